package main

import (
	"context"
	"fmt"

	"github.com/chorusfm/chorus/internal/session"
	"github.com/chorusfm/chorus/internal/shared"
	"github.com/urfave/cli/v3"
)

// Login authenticates against the catalog and persists the identity so
// later invocations and the TUI pick it up.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	identifier := cmd.StringArg("identifier")
	secret := cmd.StringArg("secret")

	if identifier == "" {
		return fmt.Errorf("%w: identifier", shared.ErrMissingArgument)
	}
	if secret == "" {
		return fmt.Errorf("%w: secret", shared.ErrMissingArgument)
	}

	r.session.Initialize()

	user, err := r.session.Login(ctx, identifier, secret)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	r.logger.Infof("session persisted for %v", user.Username)
	r.writePlainln("✓ Signed in as %s (%s)", user.Username, user.Role)

	return nil
}

// Logout clears any persisted session. Logging out while signed out is not
// an error.
func (r *Runner) Logout(ctx context.Context, cmd *cli.Command) error {
	r.session.Initialize()

	if err := r.session.Logout(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return r.writePlain("✓ Signed out\n")
}

// WhoAmI prints the persisted identity, if any.
func (r *Runner) WhoAmI(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")

	if r.session.Initialize() != session.StateAuthenticated {
		return r.writePlain("Not signed in\n")
	}

	user, _ := r.session.User()

	if useJSON {
		return r.writeJSON(user, true)
	}

	r.writePlain("%s (%s)\n", user.Username, user.Email)
	r.writePlain("Role: %s\n", user.Role)
	if user.CreatedAt != "" {
		r.writePlain("Member since: %s\n", user.CreatedAt)
	}

	return nil
}
