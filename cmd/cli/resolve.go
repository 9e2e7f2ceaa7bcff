package main

import (
	"context"
	"fmt"
	"io"

	"go-yourtask/internal/account"
	"go-yourtask/internal/auth"
	"go-yourtask/internal/dashboard"
	"go-yourtask/internal/session"
	"go-yourtask/internal/task"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <username>",
	Short: "Show which role a login handle resolves to and how many tasks it would see",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		return runResolve(ctx, cmd.OutOrStdout(), stack.Accounts, stack.Tasks, args[0])
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(ctx context.Context, w io.Writer, accounts account.Repository, tasks task.Repository, handle string) error {
	var (
		ops      []account.Account
		couriers []account.Account
		all      []task.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ops, err = accounts.FindOps(gctx)
		return err
	})
	g.Go(func() (err error) {
		couriers, err = accounts.FindCouriers(gctx)
		return err
	})
	g.Go(func() (err error) {
		all, err = tasks.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	sess, err := auth.Resolve(handle, ops, couriers, all)
	if err != nil {
		return err
	}

	groups := dashboard.GroupByFms(dashboard.ScopeTasks(sess, all))
	visible := 0
	for _, grp := range groups {
		visible += len(grp.Tasks)
	}

	fmt.Fprintf(w, "username: %s\nname:     %s\nrole:     %s\n", sess.Username, sess.Name, sess.Role)
	fmt.Fprintf(w, "tasks:    %d in %d FMS group(s)\n", visible, len(groups))
	if sess.Role == session.RoleKurir {
		for _, grp := range groups {
			fmt.Fprintf(w, "  %s (%d paket)\n", grp.FmsID, grp.PackageCount)
		}
	}
	return nil
}
