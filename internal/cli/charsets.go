package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

func newCharsetsCmd(app App) *cobra.Command {
	return &cobra.Command{
		Use:   "charsets",
		Short: "List the character sets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range crypto.Classes {
				fmt.Fprintf(app.Out, "%-10s %2d  %s\n", c, len(c.Alphabet()), c.Alphabet())
			}
			fmt.Fprintf(app.Out, "length: %d-%d (default %d)\n", crypto.MinLength, crypto.MaxLength, crypto.DefaultLength)
		},
	}
}
