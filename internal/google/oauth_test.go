package google

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateAccountName(t *testing.T) {
	tests := []struct {
		name    string
		account string
		wantErr bool
	}{
		{"valid default", "default", false},
		{"valid work", "work", false},
		{"valid with hyphen", "work-email", false},
		{"valid with underscore", "personal_email", false},
		{"valid with dot", "work.email", false},
		{"valid email address", "me@example.com", false},
		{"valid alphanumeric", "account123", false},
		{"empty", "", true},
		{"with spaces", "my account", true},
		{"with slash", "work/personal", true},
		{"path traversal", "../work", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAccountName(tt.account)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAccountName() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenFile(t *testing.T) {
	tests := []struct {
		name     string
		account  string
		readOnly bool
		want     string
	}{
		{"default read-write", "default", false, "default.readwrite.token"},
		{"default read-only", "default", true, "default.readonly.token"},
		{"work read-write", "work", false, "work.readwrite.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenFile(tt.account, tt.readOnly)
			if filepath.Base(got) != tt.want {
				t.Errorf("tokenFile() = %v, want base %v", got, tt.want)
			}
		})
	}
}

func TestHasToken(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	if HasToken("invalid account", false) {
		t.Error("HasToken() should return false for invalid account name")
	}
	if HasToken("", false) {
		t.Error("HasToken() should return false for empty account name")
	}
	if HasToken("default", false) {
		t.Error("HasToken() should return false with no cached token")
	}
}

func TestHasTokenReadOnlyFallsBackToReadWrite(t *testing.T) {
	cacheDir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheDir)

	tokenDir := filepath.Dir(tokenFile("default", false))
	if err := os.MkdirAll(tokenDir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tokenFile("default", false), []byte("access refresh"), 0600); err != nil {
		t.Fatal(err)
	}

	if !HasToken("default", false) {
		t.Error("HasToken() should see the read-write token")
	}
	if !HasToken("default", true) {
		t.Error("HasToken() for read-only access should accept a read-write token")
	}
	if HasToken("other", true) {
		t.Error("HasToken() should not see tokens of other accounts")
	}
}

func TestClearToken(t *testing.T) {
	cacheDir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheDir)

	tokenDir := filepath.Dir(tokenFile("work", false))
	if err := os.MkdirAll(tokenDir, 0700); err != nil {
		t.Fatal(err)
	}
	for _, readOnly := range []bool{false, true} {
		if err := os.WriteFile(tokenFile("work", readOnly), []byte("access refresh"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if err := ClearToken("work"); err != nil {
		t.Fatalf("ClearToken() error = %v", err)
	}
	if HasToken("work", false) || HasToken("work", true) {
		t.Error("ClearToken() should remove both token files")
	}

	// Clearing an account with no tokens is not an error.
	if err := ClearToken("work"); err != nil {
		t.Fatalf("second ClearToken() error = %v", err)
	}

	if err := ClearToken("../work"); err == nil {
		t.Error("ClearToken() should reject invalid account names")
	}
}

func TestOAuthScopes(t *testing.T) {
	rw := oauthScopes(false)
	ro := oauthScopes(true)

	if len(rw) != 1 || len(ro) != 1 {
		t.Fatalf("expected one scope per access level, got %v and %v", rw, ro)
	}
	if rw[0] == ro[0] {
		t.Error("read-write and read-only scopes should differ")
	}
}
