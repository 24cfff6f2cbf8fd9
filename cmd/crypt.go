package cmd

import (
	"fmt"

	"revo-utils/core/crypto"

	"github.com/spf13/cobra"
)

// cryptCmd represents the crypt command
var cryptCmd = &cobra.Command{
	Use:   "crypt",
	Short: "Encrypt and decrypt values with the configured key",
	Long:  `Uses CRYPTO_KEY, a Fernet key, or a comma-separated list of keys where the first encrypts.`,
}

var genkeyCmd = &cobra.Command{
	Use:   "genkey",
	Short: "Print a new random key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := crypto.GenerateKey()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), key)
		return nil
	},
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <value>",
	Short: "Encrypt a value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		enc, err := newEncryptor()
		if err != nil {
			return err
		}
		token, err := enc.Encrypt(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <token>",
	Short: "Decrypt a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		enc, err := newEncryptor()
		if err != nil {
			return err
		}
		value, err := enc.Decrypt(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

func newEncryptor() (*crypto.Encryptor, error) {
	cfg, _, err := bootstrap()
	if err != nil {
		return nil, err
	}
	return crypto.FromConfig(cfg.Crypto)
}

func init() {
	cryptCmd.AddCommand(genkeyCmd, encryptCmd, decryptCmd)
	RootCmd.AddCommand(cryptCmd)
}
