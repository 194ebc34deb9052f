package cli

import (
	"fmt"

	"github.com/diillson/payments-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
     ____                                  _
    |  _ \ __ _ _   _ _ __ ___   ___ _ __ | |_ ___
    | |_) / _' | | | | '_ ' _ \ / _ \ '_ \| __/ __|
    |  __/ (_| | |_| | | | | | |  __/ | | | |_\__ \
    |_|   \__,_|\__, |_| |_| |_|\___|_| |_|\__|___/
                |___/        Pakistan Digital Payments
    `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()

	fmt.Println(green(banner))
	fmt.Println(white(fmt.Sprintf("Payments Dashboard CLI (v%s)", version.FormatVersion())))
}
