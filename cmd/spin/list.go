package main

import (
	"fmt"

	"github.com/spf13/cobra"

	spinerrors "github.com/abatilo/spin/internal/errors"
	"github.com/abatilo/spin/internal/task"
)

// initCmd implements 'spin init'.
func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter task list",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			store, err := getStore()
			if err != nil {
				printError(err)
			}
			if err = store.Init(force); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Initialized task list at %s", store.Path())))
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing task list")
	return cmd
}

// addCmd implements 'spin add'.
func addCmd() *cobra.Command {
	var priority string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a task to the list",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			store, err := getStore()
			if err != nil {
				printError(err)
			}

			p, ok := task.ParsePriority(priority)
			if !ok {
				printError(spinerrors.InvalidPriorityError{Value: priority})
			}

			list, err := store.Add(task.Task{Name: args[0], Priority: p})
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTaskList(list.Tasks))
		},
	}
	cmd.Flags().StringVarP(&priority, "priority", "p", string(task.PriorityImportant), "Priority (critical, important, maintenance)")
	return cmd
}

// rmCmd implements 'spin rm'.
func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a task from the list",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			store, err := getStore()
			if err != nil {
				printError(err)
			}
			if _, err = store.Remove(args[0]); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Removed task %s", args[0])))
		},
	}
}

// listCmd implements 'spin list'.
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			store, err := getStore()
			if err != nil {
				printError(err)
			}
			list, err := store.Load()
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTaskList(list.Tasks))
		},
	}
}
