package system

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jordanwest/daykeep/internal/cli"
)

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Force {
		fmt.Print("This permanently deletes all recorded days and settings. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// ResetAll clears durable storage synchronously through the gateway and
	// cancels any pending debounced write.
	ctx.Store.ResetAll()
	fmt.Println("All data reset to defaults.")
	return nil
}
