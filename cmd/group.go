package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"splitsnap/internal/cli"
	"splitsnap/internal/model"

	"github.com/spf13/cobra"
)

var flagMembers []string

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage the active group",
}

var groupCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a group and reset the ledger",
	Long: "Create a group on the balance service. The server starts a fresh\n" +
		"ledger: any previous expenses and settlements are gone.",
	Args: cobra.ExactArgs(1),
	RunE: runGroupCreate,
}

var groupShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the locally remembered group and roster",
	RunE:  runGroupShow,
}

func init() {
	groupCreateCmd.Flags().StringSliceVarP(&flagMembers, "members", "m", nil, "Comma-separated member names")
	groupCmd.AddCommand(groupCreateCmd)
	groupCmd.AddCommand(groupShowCmd)
	rootCmd.AddCommand(groupCmd)
}

func runGroupCreate(_ *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	members := cleanMembers(flagMembers)

	if name == "" {
		return errors.New("group name is empty")
	}
	if len(members) < 2 {
		return errors.New("a group needs at least two members (--members a,b)")
	}

	cfg := loadConfig()
	ctx, cancel := cmdContext()
	defer cancel()

	if err := newClient(cfg).CreateGroup(ctx, name, members); err != nil {
		return err
	}

	if sess := openSession(); sess != nil {
		defer sess.Close()
		if err := sess.SaveGroup(model.Group{Name: name, Members: members}); err != nil && !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Session not updated: %v\n", err)
		}
	}

	fmt.Printf("\n  Group %q created with %d members: %s\n",
		name, len(members), strings.Join(members, ", "))
	fmt.Println("  Previous expenses are wiped. Start adding with `splitsnap expense add`.")
	fmt.Println()
	return nil
}

func runGroupShow(_ *cobra.Command, _ []string) error {
	sess := openSession()
	if sess == nil {
		return errors.New("no session available")
	}
	defer sess.Close()

	g, ok, err := sess.LoadGroup()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("\n  No group yet. Create one with `splitsnap group create`.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(g.Members))
	for i, m := range g.Members {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), m})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   g.Name,
		Headers: []string{"#", "Member"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

// cleanMembers trims entries and drops blanks and duplicates, keeping
// first-seen order.
func cleanMembers(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	members := make([]string, 0, len(raw))
	for _, m := range raw {
		m = strings.TrimSpace(m)
		if m == "" || seen[strings.ToLower(m)] {
			continue
		}
		seen[strings.ToLower(m)] = true
		members = append(members, m)
	}
	return members
}
