package cli

import (
	"context"
	"os"

	"github.com/jessevdk/go-flags"
)

func Run(args []string) error {
	options := &Options{}
	_, err := flags.ParseArgs(options, args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	return New(os.Stdout).Run(ctx, options)
}
