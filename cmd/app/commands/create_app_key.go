package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/allisson/hdrivault/internal/crypto/domain"

	// Register KMS keeper drivers for the optional wrap step
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// RunCreateAppKey generates a cryptographically secure 32-byte application key
// and prints the environment variables to configure it. With a KMS keeper URI
// the key is wrapped before output and only the ciphertext is printed; the raw
// key material is zeroed either way.
func RunCreateAppKey(ctx context.Context, w io.Writer, keyID, kmsKeyURI string) error {
	if keyID == "" {
		keyID = fmt.Sprintf("app-key-%s", time.Now().Format("2006-01-02"))
	}

	appKey := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(appKey); err != nil {
		return fmt.Errorf("failed to generate application key: %w", err)
	}
	defer cryptoDomain.Zero(appKey)

	if kmsKeyURI == "" {
		fmt.Fprintln(w, "# Application Key Configuration")
		fmt.Fprintln(w, "# Copy these environment variables to your .env file or secrets manager")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "APP_KEY_ID=%q\n", keyID)
		fmt.Fprintf(w, "APP_KEY=%q\n", base64.StdEncoding.EncodeToString(appKey))
		return nil
	}

	keeper, err := secrets.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			fmt.Fprintf(w, "# Warning: failed to close KMS keeper: %v\n", closeErr)
		}
	}()

	ciphertext, err := keeper.Encrypt(ctx, appKey)
	if err != nil {
		return fmt.Errorf("failed to wrap application key with KMS: %w", err)
	}

	fmt.Fprintln(w, "# Application Key Configuration (KMS Mode)")
	fmt.Fprintln(w, "# The key below is KMS ciphertext; the plaintext key was not printed")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "APP_KEY_ID=%q\n", keyID)
	fmt.Fprintf(w, "KMS_KEY_URI=%q\n", kmsKeyURI)
	fmt.Fprintf(w, "WRAPPED_APP_KEY=%q\n", base64.StdEncoding.EncodeToString(ciphertext))
	return nil
}
