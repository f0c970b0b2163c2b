package main

import (
	"errors"
	"fmt"

	"gopkg.in/urfave/cli.v1"

	"github.com/regnull/easyecies"
	"github.com/regnull/easyecies/internal/boundary"
	"github.com/regnull/easyecies/internal/config"
	"github.com/regnull/easyecies/internal/log"
)

const demoMessage = "Good morning Cape Town!"

var errInvalidSignature = errors.New("signature is not valid")

func (a *app) commands() []cli.Command {
	return []cli.Command{
		{
			Name:   "demo",
			Usage:  "generate a key pair and round trip a message",
			Action: a.demo,
		},
		{
			Name:   "genkey",
			Usage:  "generate a secret key and print it with its public key",
			Action: a.genkey,
		},
		{
			Name:      "pubkey",
			Usage:     "print the public key of a secret key",
			ArgsUsage: "SECRET_HEX",
			Action:    a.pubkey,
		},
		{
			Name:      "encrypt",
			Usage:     "encrypt a message for a public key",
			ArgsUsage: "PUBLIC_HEX MESSAGE",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "compat", Usage: "write the legacy message format"},
			},
			Action: a.encrypt,
		},
		{
			Name:      "decrypt",
			Usage:     "decrypt a base64 message",
			ArgsUsage: "SECRET_HEX MESSAGE",
			Action:    a.decrypt,
		},
		{
			Name:      "mnemonic",
			Usage:     "print the BIP-39 mnemonic of a secret key, or restore one with --restore",
			ArgsUsage: "SECRET_HEX | --restore WORDS",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "restore", Usage: "mnemonic to turn back into a secret key"},
			},
			Action: a.mnemonic,
		},
		{
			Name:      "jwk",
			Usage:     "print a secret key as a JWK",
			ArgsUsage: "SECRET_HEX",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "passphrase", Usage: "wrap the JWK in a passphrase protected JWE"},
			},
			Action: a.jwk,
		},
		{
			Name:      "sign",
			Usage:     "sign the double SHA-256 of a message",
			ArgsUsage: "SECRET_HEX MESSAGE",
			Action:    a.sign,
		},
		{
			Name:      "verify",
			Usage:     "verify a DER signature over a message",
			ArgsUsage: "PUBLIC_HEX MESSAGE SIGNATURE_HEX",
			Action:    a.verify,
		},
		{
			Name:      "address",
			Usage:     "print the Bitcoin and Ethereum addresses of a public key",
			ArgsUsage: "PUBLIC_HEX",
			Action:    a.address,
		},
	}
}

func requireArgs(ctx *cli.Context, n int) error {
	if ctx.NArg() != n {
		return fmt.Errorf("%s: expected %d arguments, got %d", ctx.Command.Name, n, ctx.NArg())
	}
	return nil
}

func (a *app) demo(ctx *cli.Context) error {
	b := boundary.New(boundary.WithLogger(a.log), boundary.WithFormat(a.cfg.Format))
	fail := func(op string, st boundary.Status) error {
		return fmt.Errorf("%s: %s", op, st.Message())
	}

	fmt.Fprintf(a.out, "\n==== ECIES encryption example ====\n\n")
	fmt.Fprintf(a.out, "Message sent: %s\n", demoMessage)

	sk, st := b.GenerateSecretKey()
	if st != boundary.StatusOK {
		return fail("generate secret key", st)
	}
	pk, st := b.PublicKeyFrom(sk)
	if st != boundary.StatusOK {
		return fail("public key", st)
	}
	fmt.Fprintf(a.out, "Secret key: %s\n", sk)
	fmt.Fprintf(a.out, "Public key: %s\n", pk)

	encrypted, st := b.Encrypt(pk, []byte(demoMessage))
	if st != boundary.StatusOK {
		return fail("encrypt", st)
	}
	fmt.Fprintf(a.out, "Encrypted: %s\n", encrypted)

	decrypted, st := b.DecryptText(sk, encrypted)
	if st != boundary.StatusOK {
		return fail("decrypt", st)
	}
	fmt.Fprintf(a.out, "Decrypted: %s\n", decrypted)
	fmt.Fprintf(a.out, "\n==== ECIES encryption example ====\n\n")
	return nil
}

func (a *app) genkey(ctx *cli.Context) error {
	sk, err := easyecies.GenerateSecretKey()
	if err != nil {
		return err
	}
	defer sk.Zero()

	a.log.Debug().Str("secret_key", log.Redacted).Str("public_key", sk.PublicKey().Hex()).Msg("generated key")
	fmt.Fprintf(a.out, "secret: %s\npublic: %s\n", sk.Hex(), sk.PublicKey().Hex())
	return nil
}

func (a *app) pubkey(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	sk, err := easyecies.ParseSecretKeyHex(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	defer sk.Zero()

	fmt.Fprintln(a.out, sk.PublicKey().Hex())
	return nil
}

func (a *app) encrypt(ctx *cli.Context) error {
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}
	pk, err := easyecies.ParsePublicKeyHex(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	message := []byte(ctx.Args().Get(1))

	var encrypted []byte
	if ctx.Bool("compat") || a.cfg.Format == config.FormatCompat {
		encrypted, err = easyecies.EncryptCompat(pk, message)
	} else {
		encrypted, err = easyecies.Encrypt(pk, message)
	}
	if err != nil {
		return err
	}
	a.log.Debug().Int("length", len(encrypted)).Msg("encrypted message")
	fmt.Fprintln(a.out, easyecies.ToBase64(encrypted))
	return nil
}

func (a *app) decrypt(ctx *cli.Context) error {
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}
	sk, err := easyecies.ParseSecretKeyHex(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	defer sk.Zero()

	plaintext, err := easyecies.DecryptBase64(sk, ctx.Args().Get(1))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, string(plaintext))
	return nil
}

func (a *app) mnemonic(ctx *cli.Context) error {
	if words := ctx.String("restore"); words != "" {
		sk, err := easyecies.NewSecretKeyFromMnemonic(words)
		if err != nil {
			return err
		}
		defer sk.Zero()
		fmt.Fprintln(a.out, sk.Hex())
		return nil
	}

	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	sk, err := easyecies.ParseSecretKeyHex(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	defer sk.Zero()

	words, err := sk.Mnemonic()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, words)
	return nil
}

func (a *app) jwk(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	sk, err := easyecies.ParseSecretKeyHex(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	defer sk.Zero()

	var out string
	if passphrase := ctx.String("passphrase"); passphrase != "" {
		out, err = sk.MarshalJWKWithPassphrase(passphrase)
	} else {
		out, err = sk.MarshalJWK()
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, out)
	return nil
}

func (a *app) sign(ctx *cli.Context) error {
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}
	sk, err := easyecies.ParseSecretKeyHex(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	defer sk.Zero()

	sig, err := sk.Sign(easyecies.Hash256([]byte(ctx.Args().Get(1))))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, easyecies.ToHex(sig.Bytes()))
	return nil
}

func (a *app) verify(ctx *cli.Context) error {
	if err := requireArgs(ctx, 3); err != nil {
		return err
	}
	pk, err := easyecies.ParsePublicKeyHex(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	der, err := easyecies.FromHex(ctx.Args().Get(2))
	if err != nil {
		return err
	}
	sig, err := easyecies.ParseSignature(der)
	if err != nil {
		return err
	}
	if !sig.Verify(pk, easyecies.Hash256([]byte(ctx.Args().Get(1)))) {
		return errInvalidSignature
	}
	fmt.Fprintln(a.out, "valid")
	return nil
}

func (a *app) address(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	pk, err := easyecies.ParsePublicKeyHex(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "bitcoin:  %s\nethereum: %s\n", pk.BitcoinAddress(), pk.EthereumAddress())
	return nil
}
