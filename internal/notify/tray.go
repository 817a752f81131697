package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/jordanwest/daykeep/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// TrayService delivers scheduling calls to the daykeep tray daemon over its
// localhost webhook. The daemon advertises its port, pid, and a shared secret
// through a lockfile; the pid is cross-checked against the live process table
// before anything is sent, so a stale lockfile never causes a blind POST.
type TrayService struct {
	client *http.Client
}

// NewTrayService builds a tray-backed notification service.
func NewTrayService() *TrayService {
	return &TrayService{client: &http.Client{}}
}

type trayCommand struct {
	Action  string   `json:"action"`
	Request *Request `json:"request,omitempty"`
}

// Schedule arms one trigger on the daemon.
func (t *TrayService) Schedule(ctx context.Context, req Request) error {
	return t.post(ctx, trayCommand{Action: "schedule", Request: &req})
}

// CancelAll tears down every armed trigger on the daemon.
func (t *TrayService) CancelAll(ctx context.Context) error {
	return t.post(ctx, trayCommand{Action: "cancel_all"})
}

// Permissions reports whether the daemon is reachable. A missing or stale
// lockfile means triggers cannot be armed, which callers treat the same as a
// denied permission.
func (t *TrayService) Permissions(ctx context.Context) (bool, error) {
	if _, _, err := findAndValidateTrayProcess(); err != nil {
		return false, nil
	}
	return true, nil
}

// RequestPermissions re-checks daemon reachability. There is no interactive
// prompt to escalate through from the command line.
func (t *TrayService) RequestPermissions(ctx context.Context) (bool, error) {
	return t.Permissions(ctx)
}

func (t *TrayService) post(ctx context.Context, cmd trayCommand) error {
	port, secret, err := findAndValidateTrayProcess()
	if err != nil {
		return err
	}

	body, err := json.Marshal(cmd)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("http://127.0.0.1:%s", port)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Daykeep-Secret", secret)

	res, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	resBody, _ := io.ReadAll(res.Body)
	return fmt.Errorf("tray daemon rejected %s with status %d: %s", cmd.Action, res.StatusCode, string(resBody))
}

// trayConfigDir returns the directory holding the daemon's lockfile. The
// daemon may redirect it through its settings file.
func trayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	dir := filepath.Join(configDir, constants.TrayAppIdentifier)

	settingsPath := filepath.Join(dir, "settings.json")
	if data, err := os.ReadFile(settingsPath); err == nil {
		var settings struct {
			LockfileDir *string `json:"lockfile_dir"`
		}
		if err := json.Unmarshal(data, &settings); err == nil {
			if settings.LockfileDir != nil && *settings.LockfileDir != "" {
				return *settings.LockfileDir, nil
			}
		}
	}

	return dir, nil
}

// findAndValidateTrayProcess reads the daemon lockfile ("port|pid|secret")
// and verifies the advertised process is alive and really is the daemon.
func findAndValidateTrayProcess() (port, secret string, err error) {
	dir, err := trayConfigDir()
	if err != nil {
		return "", "", err
	}

	content, err := os.ReadFile(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return "", "", errors.New("daykeep-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("tray lockfile is malformed")
	}

	port = parts[0]
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port in tray lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in tray lockfile")
	}
	secret = parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in tray lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("daykeep-tray process not running")
	}
	if !strings.HasPrefix(process.Executable(), "daykeep-tray") {
		return "", "", fmt.Errorf("process with PID %d is not daykeep-tray (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}
