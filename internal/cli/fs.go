package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/gen/errors"
)

func (a *app) newFSCmd() *cobra.Command {
	fsCmd := &cobra.Command{
		Use:   "fs",
		Short: "Filesystem operations with annotated errors",
	}

	fsCmd.AddCommand(
		&cobra.Command{
			Use:   "canonicalize <path>",
			Short: "Print the absolute path with symbolic links resolved",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := a.fs.Canonicalize(args[0])
				if err != nil {
					return err
				}
				return a.print(cmd, "path", path)
			},
		},
		&cobra.Command{
			Use:   "copy <from> <to>",
			Short: "Copy a file and print the number of bytes copied",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := a.fs.Copy(args[0], args[1])
				if err != nil {
					return err
				}
				return a.print(cmd, "bytes", n)
			},
		},
		&cobra.Command{
			Use:   "mkdir <path>",
			Short: "Create a directory and any missing parents",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return a.fs.CreateDirAll(args[0])
			},
		},
		&cobra.Command{
			Use:   "pwd",
			Short: "Print the current directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				wd, err := a.fs.CurrentDir()
				if err != nil {
					return err
				}
				return a.print(cmd, "path", wd)
			},
		},
		&cobra.Command{
			Use:   "cat <path>",
			Short: "Write the contents of a file to stdout",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := a.fs.Read(args[0])
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "rm <path>",
			Short: "Remove a file or symbolic link",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return a.fs.RemoveFile(args[0])
			},
		},
		&cobra.Command{
			Use:   "write <path>",
			Short: "Replace the contents of a file with stdin",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, errors.CodeIO, "read stdin")
				}
				return a.fs.Write(args[0], data)
			},
		},
		a.newSymlinkCmd(),
	)

	return fsCmd
}

func (a *app) newSymlinkCmd() *cobra.Command {
	var dir bool

	cmd := &cobra.Command{
		Use:   "symlink <src> <dst>",
		Short: "Create dst as a symbolic link to src",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if dir {
				return a.fs.SymlinkDir(args[0], args[1])
			}
			return a.fs.SymlinkFile(args[0], args[1])
		},
	}
	cmd.Flags().BoolVar(&dir, "dir", false, "src is a directory")
	return cmd
}
