package install

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"eventlink/internal/crypto/ecdh"
	"eventlink/internal/global"
	"eventlink/internal/receiver"
	"strings"

	"golang.org/x/term"
)

func installConfig() (err error) {
	configFilePath := global.DefaultConfigPath

	err = os.Mkdir(global.DefaultConfigDir, 0755)
	if err != nil {
		if strings.HasSuffix(err.Error(), "file exists") {
			err = nil
		} else {
			err = fmt.Errorf("failed to create configuration directory: %v", err)
			return
		}
	}

	// Don't overwrite existing
	_, err = os.Stat(configFilePath)
	if err == nil {
		// No terminal - no overwrite
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Printf("Existing configuration file present, not overwriting\n")
			return
		}

		// File exists, prompt user for confirmation to overwrite
		fmt.Printf("Configuration file already exists at '%s'. Are you SURE you want to overwrite it? (yes/no): ", configFilePath)
		reader := bufio.NewReader(os.Stdin)
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)

		if strings.ToLower(input) != "yes" {
			fmt.Printf("Not overwriting configuration file\n")
			return
		}
	}

	var private, public []byte
	private, public, err = ecdh.CreatePersistentKey()
	if err != nil {
		return
	}

	_, err = os.Stat(global.DefaultPrivKeyPath)
	if err != nil {
		if !os.IsNotExist(err) {
			err = fmt.Errorf("failed checking private key file existence: %v", err)
			return
		}

		var privKeyFile *os.File
		privKeyFile, err = os.OpenFile(global.DefaultPrivKeyPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			err = fmt.Errorf("failed to open private key file: %v", err)
			return
		}

		_, err = privKeyFile.Write([]byte(base64.StdEncoding.EncodeToString(private)))
		if err != nil {
			err = fmt.Errorf("failed to write new private key: %v", err)
			return
		}
		fmt.Printf("Successfully wrote new private key file to '%s'\n", global.DefaultPrivKeyPath)
		fmt.Printf("  IMPORTANT: Public key (use this to authorize definition sync against this station): %s\n", base64.StdEncoding.EncodeToString(public))
	}

	err = CreateRecvTemplateConfig(configFilePath)
	if err != nil {
		return
	}

	fmt.Printf("Successfully wrote template configuration file to '%s'\n", configFilePath)
	return
}

func uninstallConfig() (err error) {
	err = os.Remove(global.DefaultPrivKeyPath)
	if err != nil && !os.IsNotExist(err) {
		err = fmt.Errorf("failed to remove private key file: %v", err)
		return
	} else {
		err = nil
	}
	fmt.Printf("Successfully removed private key file '%s'\n", global.DefaultPrivKeyPath)

	err = os.RemoveAll(global.DefaultConfigDir)
	if err != nil && !os.IsNotExist(err) {
		return
	} else {
		err = nil
	}

	fmt.Printf("Successfully removed configuration directory '%s'\n", global.DefaultConfigDir)
	return
}

func CreateRecvTemplateConfig(filepath string) (err error) {
	if filepath == "" {
		err = fmt.Errorf("specify template file path via the --config/-c arguments")
		return
	}

	newConfFile, err := os.OpenFile(filepath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer newConfFile.Close()

	var newCfg receiver.JSONConfig
	newCfg.PrivateKeyFile = global.DefaultPrivKeyPath

	newCfg.Listen.Address = "[::]"
	newCfg.Listen.Port = global.DefaultReceiverPort

	newCfg.Definitions.Path = global.DefaultDefinitionsPath
	newCfg.Definitions.ReloadOnChange = true

	newCfg.Sync.Enabled = false

	newCfg.Profile = global.DefaultProfile

	newCfg.Outputs.Stdout = true
	newCfg.Outputs.JournalEndpoint = global.DefaultJournaldURL

	newCfg.Remote.OurSystemID = 1
	newCfg.Remote.OurComponentID = 1

	newCfg.Metrics.Enabled = true
	newCfg.Metrics.CollectionInterval = "15s"
	newCfg.Metrics.MaxAge = "1h"
	newCfg.Metrics.QueryServerPort = global.HTTPListenPortReceiver

	newCfg.Logging.Level = global.VerbosityStandard

	confBytes, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		err = fmt.Errorf("error marshaling new config: %v", err)
		return
	}
	confBytes = append(confBytes, []byte("\n")...)

	_, err = newConfFile.Write(confBytes)
	if err != nil {
		err = fmt.Errorf("failed to write config to file: %v", err)
		return
	}
	return
}
