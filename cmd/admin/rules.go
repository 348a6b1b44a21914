package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/juho05/diacritics/repos"
	"github.com/juho05/diacritics/util"
)

const rulesUsage = "rules <command>\n\nCOMMANDS:\n  list <set>\n  set [-upper <text>] [-lower <text>] <set> <char> <base>\n  delete <set> <char>"

func findSet(ctx context.Context, repo repos.MappingSetRepository, name string) (*repos.MappingSet, error) {
	set, err := repo.FindByName(ctx, name)
	if errors.Is(err, repos.ErrNotFound) {
		return nil, fmt.Errorf("mapping set '%s' does not exist", name)
	}
	return set, err
}

func rulesList(args []string, repo repos.MappingSetRepository) error {
	if len(args) < 4 {
		fmt.Println("USAGE:", args[0], "rules list <set>")
		os.Exit(1)
	}
	ctx := context.Background()
	set, err := findSet(ctx, repo, args[3])
	if err != nil {
		return err
	}
	rules, err := repo.FindRules(ctx, set.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Rules of '%s' (%d):\n", set.Name, len(rules))
	for _, r := range rules {
		fmt.Printf("  %s -> %q", r.Char, r.Base)
		if r.UpperOverride != nil {
			fmt.Printf(" upper: %q", *r.UpperOverride)
		}
		if r.LowerOverride != nil {
			fmt.Printf(" lower: %q", *r.LowerOverride)
		}
		fmt.Println()
	}
	return nil
}

func rulesSet(args []string, repo repos.MappingSetRepository) error {
	fs := flag.NewFlagSet("rules set", flag.ExitOnError)
	upper := fs.String("upper", "", "replacement for the uppercase form (default: uppercased base)")
	lower := fs.String("lower", "", "replacement for the lowercase form (default: base)")
	_ = fs.Parse(args[3:])

	if fs.NArg() < 3 {
		fmt.Println("USAGE:", args[0], "rules set [-upper <text>] [-lower <text>] <set> <char> <base>")
		os.Exit(1)
	}
	char, err := parseChar(fs.Arg(1))
	if err != nil {
		return err
	}
	params := repos.SetMappingRuleParams{
		Char: char,
		Base: fs.Arg(2),
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "upper":
			params.UpperOverride = util.ToPtr(*upper)
		case "lower":
			params.LowerOverride = util.ToPtr(*lower)
		}
	})

	ctx := context.Background()
	set, err := findSet(ctx, repo, fs.Arg(0))
	if err != nil {
		return err
	}
	return repo.SetRule(ctx, set.ID, params)
}

func rulesDelete(args []string, repo repos.MappingSetRepository) error {
	if len(args) < 5 {
		fmt.Println("USAGE:", args[0], "rules delete <set> <char>")
		os.Exit(1)
	}
	char, err := parseChar(args[4])
	if err != nil {
		return err
	}
	ctx := context.Background()
	set, err := findSet(ctx, repo, args[3])
	if err != nil {
		return err
	}
	err = repo.DeleteRule(ctx, set.ID, char)
	if errors.Is(err, repos.ErrNotFound) {
		return fmt.Errorf("mapping set '%s' has no rule for '%s'", set.Name, args[4])
	}
	return err
}

func rules(args []string, repo repos.MappingSetRepository) error {
	if len(args) < 3 {
		fmt.Println("USAGE:", args[0], rulesUsage)
		os.Exit(1)
	}
	var err error
	switch args[2] {
	case "list":
		err = rulesList(args, repo)
	case "set":
		err = rulesSet(args, repo)
	case "delete":
		err = rulesDelete(args, repo)
	default:
		fmt.Println("Unknown command")
		fmt.Println("USAGE:", args[0], rulesUsage)
		os.Exit(1)
	}
	return err
}
