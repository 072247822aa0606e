package transport

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"
)

const authTimeout = 30 * time.Second

// AuthResult is the outcome of a successful username/password login.
type AuthResult struct {
	Token    string
	UserID   string
	Username string
}

// AuthenticateByName logs in with a username and password and returns the
// access token to use as the api key on subsequent connections.
func AuthenticateByName(ctx context.Context, serverURL, username, password string, logger *slog.Logger) (*AuthResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	serverURL = strings.TrimRight(serverURL, "/")

	body, err := json.Marshal(map[string]string{
		"Username": username,
		"Pw":       password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		serverURL+"/Users/AuthenticateByName", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Emby-Authorization",
		`MediaBrowser Client="embygo", Device="CLI", DeviceId="embygo-client", Version="dev"`)

	httpClient := &http.Client{Timeout: authTimeout}
	resp, err := httpClient.Do(req)
	if err != nil {
		logger.Error("auth request failed", "error", err)
		return nil, ErrServerUnreachable
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		logger.Error("auth error", "status", resp.StatusCode, "body", string(respBody))
		return nil, fmt.Errorf("authentication failed with status %d", resp.StatusCode)
	}

	var authResp struct {
		User struct {
			ID   string `json:"Id"`
			Name string `json:"Name"`
		} `json:"User"`
		AccessToken string `json:"AccessToken"`
	}
	if err := json.Unmarshal(respBody, &authResp); err != nil {
		return nil, fmt.Errorf("failed to parse auth response: %w", err)
	}

	return &AuthResult{
		Token:    authResp.AccessToken,
		UserID:   authResp.User.ID,
		Username: authResp.User.Name,
	}, nil
}

// PromptCredentials reads a username and a hidden password from the
// terminal.
func PromptCredentials() (username, password string, err error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Username: ")
	username, err = reader.ReadString('\n')
	if err != nil {
		return "", "", fmt.Errorf("failed to read username: %w", err)
	}
	username = strings.TrimSpace(username)

	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}
	return username, string(passwordBytes), nil
}

// PromptServerURL reads a server URL from the terminal.
func PromptServerURL() (string, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter your server URL (e.g., http://192.168.1.100:8096): ")
	serverURL, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(serverURL), nil
}
