package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"splitsnap/internal/model"
	"splitsnap/internal/splitapi"
	"splitsnap/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// groupValues backs the first-run group form.
type groupValues struct {
	Name    string
	Members string // comma-separated
}

func newGroupForm(vals *groupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Group name").
				Placeholder("Goa Trip").
				Value(&vals.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("every group needs a name")
					}
					return nil
				}),
			huh.NewInput().
				Title("Members").
				Description("Comma-separated, at least two").
				Placeholder("Alice, Bob, Carol").
				Value(&vals.Members).
				Validate(func(s string) error {
					if len(splitMembers(s)) < 2 {
						return errors.New("you can't split a bill with yourself")
					}
					return nil
				}),
		).Title("Create your group").
			Description("This wipes any previous ledger on the server."),
	)
}

func (a App) updateGroupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.groupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.groupForm = f
	}

	if a.groupForm.State == huh.StateCompleted {
		g := model.Group{
			Name:    strings.TrimSpace(a.groupVals.Name),
			Members: splitMembers(a.groupVals.Members),
		}
		return a, createGroupCmd(a.client, a.sess, g)
	}

	if a.groupForm.State == huh.StateAborted {
		a.groupForm = nil
		return a, tea.Quit // no group means nothing to show
	}

	return a, cmd
}

func createGroupCmd(client *splitapi.Client, sess *store.Store, g model.Group) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		if err := client.CreateGroup(ctx, g.Name, g.Members); err != nil {
			return GroupCreatedMsg{Err: err}
		}
		if sess != nil {
			_ = sess.SaveGroup(g)
		}
		return GroupCreatedMsg{Group: g}
	}
}

func splitMembers(s string) []string {
	seen := make(map[string]bool)
	var members []string
	for _, m := range strings.Split(s, ",") {
		m = strings.TrimSpace(m)
		if m == "" || seen[strings.ToLower(m)] {
			continue
		}
		seen[strings.ToLower(m)] = true
		members = append(members, m)
	}
	return members
}

// expenseValues backs the in-dashboard expense form. Amount stays a raw
// string until submission so typing feels natural.
type expenseValues struct {
	Title    string
	Amount   string
	Payer    string
	Category string
	SmartTax bool
}

var expenseCategories = []string{"Dining", "Travel", "Stay", "Groceries", "Fun", "Misc"}

func newExpenseValues(g model.Group) expenseValues {
	vals := expenseValues{Category: "Misc"}
	if len(g.Members) > 0 {
		vals.Payer = g.Members[0]
	}
	return vals
}

func newExpenseForm(g model.Group, vals *expenseValues) *huh.Form {
	payerOpts := make([]huh.Option[string], len(g.Members))
	for i, m := range g.Members {
		payerOpts[i] = huh.NewOption(m, m)
	}
	catOpts := make([]huh.Option[string], len(expenseCategories))
	for i, c := range expenseCategories {
		catOpts[i] = huh.NewOption(c, c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What was it?").
				Placeholder("Dinner").
				Value(&vals.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("give it a title")
					}
					return nil
				}),
			huh.NewInput().
				Title("Amount").
				Placeholder("500").
				Value(&vals.Amount).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return errors.New("enter a positive number")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Who paid?").
				Options(payerOpts...).
				Value(&vals.Payer),
			huh.NewSelect[string]().
				Title("Category").
				Options(catOpts...).
				Value(&vals.Category),
			huh.NewConfirm().
				Title("Add GST + tip?").
				Value(&vals.SmartTax),
		).Title("Add expense").
			Description("Split equally across the whole group."),
	)
}

func (a App) updateExpenseForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.expenseForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.expenseForm = f
	}

	if a.expenseForm.State == huh.StateCompleted {
		amount, _ := strconv.ParseFloat(strings.TrimSpace(a.expenseVals.Amount), 64)
		if a.expenseVals.SmartTax {
			amount = splitapi.ApplySurcharge(amount, a.cfg.Surcharge.GSTPercent, a.cfg.Surcharge.TipPercent)
		}
		form := splitapi.ExpenseForm{
			Title:    strings.TrimSpace(a.expenseVals.Title),
			Amount:   amount,
			Payer:    a.expenseVals.Payer,
			Category: a.expenseVals.Category,
			Split:    model.SplitEqual,
		}
		return a, addExpenseCmd(a.client, form)
	}

	if a.expenseForm.State == huh.StateAborted {
		a.expenseForm = nil
		return a, nil
	}

	return a, cmd
}

func addExpenseCmd(client *splitapi.Client, form splitapi.ExpenseForm) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		err := client.AddExpense(ctx, splitapi.BuildExpensePayload(form))
		return ExpenseAddedMsg{Title: form.Title, Err: err}
	}
}
