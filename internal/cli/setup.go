package cli

import (
	"flag"
	"fmt"
	"os"
	"eventlink/internal/global"
	"eventlink/internal/install"
)

// Setup/installation options
func SetupMode(cliOpts *global.CommandSet, commandname string, args []string) {
	var newKeyPair bool
	var newRecvConf bool
	var installReceiver bool
	var uninstallReceiver bool
	var templateConfPath string

	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	commandFlags.BoolVar(&uninstallReceiver, "uninstall", false, "Remove the receive daemon")
	commandFlags.BoolVar(&installReceiver, "install", false, "Install/Upgrade the receive daemon")
	commandFlags.StringVar(&templateConfPath, "c", "", "Path to template config file")
	commandFlags.StringVar(&templateConfPath, "config", "", "Path to template config file")
	commandFlags.BoolVar(&newKeyPair, "create-keys", false, "Create new persistent key pair (prints to stdout)")
	commandFlags.BoolVar(&newRecvConf, "config-template", false, "Create new template config for the receive daemon (using config-path argument)")

	commandFlags.Usage = func() {
		PrintHelpMenu(commandFlags, commandname, cliOpts)
	}
	if len(args) < 1 {
		PrintHelpMenu(commandFlags, commandname, cliOpts)
		os.Exit(1)
	}
	commandFlags.Parse(args[0:])

	var err error

	if newKeyPair {
		err = install.GeneratePrivateKeys()
	} else if newRecvConf {
		err = install.CreateRecvTemplateConfig(templateConfPath)
	} else if installReceiver {
		install.Run()
	} else if uninstallReceiver {
		install.Remove()
	} else {
		PrintHelpMenu(commandFlags, commandname, cliOpts)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
