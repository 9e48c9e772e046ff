package main

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/term"
)

func TestCheckOverwrite(t *testing.T) {
	walletFile := filepath.Join(t.TempDir(), "wallet.json")

	err := checkOverwrite(walletFile, false)
	if err != nil {
		t.Fatalf("a missing wallet file must not need confirmation: %s", err)
	}

	err = os.WriteFile(walletFile, []byte("{}"), 0600)
	if err != nil {
		t.Fatalf("WriteFile: %s", err)
	}
	err = checkOverwrite(walletFile, true)
	if err != nil {
		t.Fatalf("--force must allow overwriting: %s", err)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("stdin is a terminal, checkOverwrite would prompt")
	}
	err = checkOverwrite(walletFile, false)
	if err == nil {
		t.Fatalf("an existing wallet file was overwritten without --force or confirmation")
	}
}
