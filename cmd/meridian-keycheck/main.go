// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// meridian-keycheck validates key identifiers and lints keyring
// files.
//
// Identifier mode (default): each argument is validated against the
// selected identifier kind. Valid IDs print "ok"; invalid IDs print
// the specific grammar failure. Exit status is 0 when every argument
// is valid, 1 otherwise.
//
//	meridian-keycheck ed25519:auto curve25519:enc
//	meridian-keycheck --kind device signed_curve25519:AAAAHg
//
// Keyring mode (--keyring): loads a YAML keyring file, validates
// every entry, and prints one line per verify key with the entity,
// key ID, and key fingerprint.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/meridian-foundation/meridian/lib/keyid"
	"github.com/meridian-foundation/meridian/lib/signjson"
	"github.com/meridian-foundation/meridian/lib/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	var kind string
	var keyringPath string

	flagSet := pflag.NewFlagSet("meridian-keycheck", pflag.ContinueOnError)
	flagSet.StringVar(&kind, "kind", "signing", "identifier kind to validate against: signing or device")
	flagSet.StringVar(&keyringPath, "keyring", "", "lint a YAML keyring file instead of validating arguments")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other Meridian binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("meridian-keycheck %s\n", version.Info())
		return 0
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return 0
	}

	if keyringPath != "" {
		return lintKeyring(keyringPath)
	}

	arguments := flagSet.Args()
	if len(arguments) == 0 {
		fmt.Fprintf(os.Stderr, "error: no key IDs to validate\n")
		printHelp(flagSet)
		return 2
	}

	validate, err := validatorFor(kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	failures := 0
	for _, raw := range arguments {
		if err := validate(raw); err != nil {
			fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
			failures++
			continue
		}
		fmt.Printf("ok: %s\n", raw)
	}
	if failures > 0 {
		return 1
	}
	return 0
}

// validatorFor maps a --kind value to the kind's parse function.
func validatorFor(kind string) (func(string) error, error) {
	switch kind {
	case "signing":
		return func(raw string) error {
			_, err := keyid.ParseSigningKeyID(raw)
			return err
		}, nil
	case "device":
		return func(raw string) error {
			_, err := keyid.ParseDeviceKeyID(raw)
			return err
		}, nil
	default:
		return nil, fmt.Errorf("unknown identifier kind %q (want signing or device)", kind)
	}
}

// lintKeyring loads the keyring file and prints one line per verify
// key. Loading already validates every key ID and key length, so
// reaching the print loop means the file is clean.
func lintKeyring(path string) int {
	keyring, err := signjson.LoadKeyring(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	entities := make([]string, 0, len(keyring))
	for entity := range keyring {
		entities = append(entities, entity)
	}
	sort.Strings(entities)

	for _, entity := range entities {
		keys := keyring[entity]
		sort.Slice(keys, func(i, j int) bool { return keys[i].ID.Compare(keys[j].ID) < 0 })
		for _, verifyKey := range keys {
			fmt.Printf("%s %s %s\n", entity, verifyKey.ID, signjson.Fingerprint(verifyKey.Key))
		}
	}
	return 0
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Println("usage: meridian-keycheck [--kind signing|device] KEY_ID...")
	fmt.Println("       meridian-keycheck --keyring FILE")
	fmt.Println()
	fmt.Println("flags:")
	fmt.Print(flagSet.FlagUsages())
}
