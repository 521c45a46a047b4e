package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lifetrack/internal/api"
	"lifetrack/internal/dates"
	"lifetrack/internal/window"
)

func (a *App) newTaskCommand() *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requireAuth()
		},
	}

	taskCmd.AddCommand(
		a.newTaskAddCommand(),
		a.newTaskListCommand(),
		a.newTaskDoneCommand(),
		a.newTaskEditCommand(),
		a.newTaskRemoveCommand(),
	)
	return taskCmd
}

func (a *App) newTaskAddCommand() *cobra.Command {
	var due string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate := dates.Today()
			if due != "" {
				parsed, err := dates.Parse(due)
				if err != nil {
					return fmt.Errorf("invalid --due date %q: use YYYY-MM-DD", due)
				}
				dueDate = parsed
			}

			task, err := a.api.AddTask(args[0], dueDate)
			if err != nil {
				return a.errorHandler.Handle("add task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s: %s (due %s)\n", task.ID, task.Text, task.DueDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, default today)")
	return cmd
}

func (a *App) newTaskListCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := window.Parse(filter)
			if err != nil {
				return a.errorHandler.Handle("list tasks", err)
			}

			tasks, err := a.api.ListTasks(w)
			if err != nil {
				return a.errorHandler.Handle("list tasks", err)
			}

			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}

			printTaskTable(cmd, tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", "Filter: all, today, week, month")
	return cmd
}

func (a *App) newTaskDoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.api.ToggleTask(args[0])
			if err != nil {
				return a.errorHandler.Handle("toggle task", err)
			}

			state := "open"
			if task.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %s is now %s.\n", task.ID, state)
			return nil
		},
	}
}

func (a *App) newTaskEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Rewrite a task's text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.api.EditTask(args[0], args[1])
			if err != nil {
				return a.errorHandler.Handle("edit task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s: %s\n", task.ID, task.Text)
			return nil
		},
	}
}

func (a *App) newTaskRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.api.DeleteTask(args[0]); err != nil {
				return a.errorHandler.Handle("delete task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s.\n", args[0])
			return nil
		},
	}
}

func printTaskTable(cmd *cobra.Command, tasks []api.TaskView) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tDUE\tTEXT")
	for _, t := range tasks {
		status := "[ ]"
		switch {
		case t.Completed:
			status = "[x]"
		case t.Overdue:
			status = "[!]"
		case t.DueToday:
			status = "[*]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, status, t.DueDate, t.Text)
	}
	w.Flush()
}
