package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samplecafe/cafe/internal/errors"
)

func passwdCmd(opts *globalOptions) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "passwd <username>",
		Short: "Set an admin password",
		Long: `Set the password of an admin account, creating the account if needed.

The password is read from the first line of stdin unless --password is
given.

Examples:
  echo 'new-password' | cafe passwd admin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				password, err = readPassword(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			_, store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SetPassword(args[0], password); err != nil {
				return err
			}
			success("Password updated for %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "New password (visible in shell history)")

	return cmd
}

// readPassword returns the first line of r without its line ending.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Newf(errors.CategoryCLI, "could not read password").Wrap(err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("C600").WithDetail("No password given on stdin.")
	}
	return line, nil
}
