package main

import (
	"errors"
	"fmt"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/ops"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check data integrity",
	Long: `Check the contact file for integrity issues.

Checks for:
- Lines that cannot be read as a contact
- Duplicate IDs
- Contacts with neither a first nor a last name
- Fields holding characters that would break the file format

Use --fix to auto-repair fixable issues: later contacts sharing an ID are
given new IDs and unreadable lines are dropped.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var validateFix bool

func init() {
	validateCmd.Flags().BoolVar(&validateFix, "fix", false, "auto-repair fixable issues")
	rootCmd.AddCommand(validateCmd)
}

// errIssuesFound makes the command exit non-zero after the report.
var errIssuesFound = errors.New("validation failed")

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := openStorage()
	if err != nil {
		return err
	}

	issues, err := ops.Validate(s)
	if err != nil {
		return err
	}

	if len(issues) == 0 {
		fmt.Println(cli.Green("No issues found."))
		return nil
	}

	if !validateFix {
		fmt.Printf("Found %d issue(s):\n\n", len(issues))
		printIssues(issues)
		return errIssuesFound
	}

	fmt.Printf("Found %d issue(s). Attempting to fix...\n\n", len(issues))

	fixes, err := ops.ValidateAndFix(s)
	if err != nil {
		return err
	}

	if len(fixes) > 0 {
		fmt.Println("Fixes applied:")
		for _, f := range fixes {
			fmt.Printf("  %s %s\n", formatIssueType(f.Type), f.Description)
		}
		fmt.Println()
	}

	// Re-validate to show remaining issues
	remaining, err := ops.Validate(s)
	if err != nil {
		return err
	}

	if len(remaining) == 0 {
		fmt.Println(cli.Green("All fixable issues resolved."))
		return nil
	}

	fmt.Printf("Remaining issues (%d) that cannot be auto-fixed:\n\n", len(remaining))
	printIssues(remaining)
	return errIssuesFound
}

func printIssues(issues []ops.Issue) {
	for _, i := range issues {
		fmt.Printf("%s %s\n", formatIssueType(i.Type), i)
	}
}

func formatIssueType(t ops.IssueType) string {
	switch t {
	case ops.IssueDuplicateID:
		return cli.Red("[duplicate]")
	case ops.IssueUnreadableLine:
		return cli.Red("[unreadable]")
	case ops.IssueMissingName:
		return cli.Yellow("[no-name]")
	case ops.IssueReservedChar:
		return cli.Yellow("[reserved]")
	default:
		return fmt.Sprintf("[%s]", t)
	}
}
