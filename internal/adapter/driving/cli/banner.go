package cli

import (
	"fmt"

	"github.com/diillson/aws-cost-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
    ___ _      _______    ______           __     ____             __    __                         __
   /   | |    / / ___/   / ____/___  _____/ /_   / __ \____ ______/ /_  / /_  ____  ____ __________/ /
  / /| | | /| / /\__ \  / /   / __ \/ ___/ __/  / / / / __ ` + "`" + `/ ___/ __ \/ __ \/ __ \/ __ ` + "`" + `/ ___/ __  / 
 / ___ | |/ |/ /___/ / / /___/ /_/ (__  ) /_   / /_/ / /_/ (__  ) / / / /_/ / /_/ / /_/ / /  / /_/ /  
/_/  |_|__/|__//____/  \____/\____/____/\__/  /_____/\__,_/____/_/ /_/_.___/\____/\__,_/_/   \__,_/   
`
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	white := color.New(color.FgHiWhite, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(white(fmt.Sprintf("AWS Cost Analysis Dashboard (v%s)", formattedVersion)))
	fmt.Println(white("Strategic Cost Management & Savings Analysis"))
}
