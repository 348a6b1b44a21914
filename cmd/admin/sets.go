package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/juho05/diacritics/config"
	"github.com/juho05/diacritics/repos"
	"github.com/juho05/diacritics/util"
)

const setsUsage = "sets <command>\n\nCOMMANDS:\n  list\n  create <name> [description]\n  rename <name> <new name>\n  describe <name> [description]\n  delete <name>"

func setsList(repo repos.MappingSetRepository, conf config.Config) error {
	sets, err := repo.FindAll(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Mapping sets (%d):\n", len(sets))
	for _, s := range sets {
		active := ""
		if slices.Contains(conf.CustomSets, s.Name) {
			active = " (active)"
		}
		fmt.Printf("  - %s%s: %s\n", s.Name, active, util.ValOr(s.Description, "no description"))
	}
	return nil
}

func setsCreate(args []string, repo repos.MappingSetRepository) error {
	if len(args) < 4 {
		fmt.Println("USAGE:", args[0], "sets create <name> [description]")
		os.Exit(1)
	}
	set, err := repo.Create(context.Background(), repos.CreateMappingSetParams{
		Name:        args[3],
		Description: optionalArg(args, 4),
	})
	if err != nil {
		if errors.Is(err, repos.ErrExists) {
			return fmt.Errorf("mapping set '%s' already exists", args[3])
		}
		return err
	}
	fmt.Printf("Created mapping set '%s' (%s)\n", set.Name, set.ID)
	return nil
}

func setsRename(args []string, repo repos.MappingSetRepository) error {
	if len(args) < 5 {
		fmt.Println("USAGE:", args[0], "sets rename <name> <new name>")
		os.Exit(1)
	}
	err := repo.Update(context.Background(), args[3], repos.UpdateMappingSetParams{
		Name: repos.NewOptionalFull(args[4]),
	})
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return fmt.Errorf("mapping set '%s' does not exist", args[3])
		}
		if errors.Is(err, repos.ErrExists) {
			return fmt.Errorf("mapping set '%s' already exists", args[4])
		}
		return err
	}
	return nil
}

func setsDescribe(args []string, repo repos.MappingSetRepository) error {
	if len(args) < 4 {
		fmt.Println("USAGE:", args[0], "sets describe <name> [description]")
		os.Exit(1)
	}
	err := repo.Update(context.Background(), args[3], repos.UpdateMappingSetParams{
		Description: repos.NewOptionalFull(optionalArg(args, 4)),
	})
	if errors.Is(err, repos.ErrNotFound) {
		return fmt.Errorf("mapping set '%s' does not exist", args[3])
	}
	return err
}

func setsDelete(args []string, repo repos.MappingSetRepository) error {
	if len(args) < 4 {
		fmt.Println("USAGE:", args[0], "sets delete <name>")
		os.Exit(1)
	}
	if !confirm(fmt.Sprintf("Delete mapping set '%s' and all of its rules?", args[3])) {
		fmt.Println("Aborted.")
		return nil
	}
	err := repo.Delete(context.Background(), args[3])
	if errors.Is(err, repos.ErrNotFound) {
		return fmt.Errorf("mapping set '%s' does not exist", args[3])
	}
	return err
}

func sets(args []string, repo repos.MappingSetRepository, conf config.Config) error {
	if len(args) < 3 {
		fmt.Println("USAGE:", args[0], setsUsage)
		os.Exit(1)
	}
	var err error
	switch args[2] {
	case "list":
		err = setsList(repo, conf)
	case "create":
		err = setsCreate(args, repo)
	case "rename":
		err = setsRename(args, repo)
	case "describe":
		err = setsDescribe(args, repo)
	case "delete":
		err = setsDelete(args, repo)
	default:
		fmt.Println("Unknown command")
		fmt.Println("USAGE:", args[0], setsUsage)
		os.Exit(1)
	}
	return err
}
