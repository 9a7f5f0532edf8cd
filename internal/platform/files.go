package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	AndroidAM      = "am"
)

// Command parameters
const (
	WindowsCmdFlag    = "/c"
	AndroidViewIntent = "android.intent.action.VIEW"
)

// Application directory names
const (
	AppDirName     = "cpnews"
	ConfigFileName = "config.yaml"
	CacheDirName   = "cache"
)

// Linux browsers tried after xdg-open
var (
	LinuxBrowsers = []string{"sensible-browser", "x-www-browser", "firefox", "chromium", "google-chrome"}
)

// ErrInvalidLink is returned for links that are not absolute http(s) URLs
var ErrInvalidLink = errors.New("invalid link")

// IsAndroid reports whether the process runs inside an Android app
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// DefaultConfigPath returns <user config dir>/cpnews/config.yaml
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, AppDirName, ConfigFileName), nil
}

// DefaultCacheDir returns the directory that holds the news cache files.
// It falls back to a directory under the working directory when the OS
// does not report a cache location.
func DefaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(".", CacheDirName)
}

// WriteFileAtomic writes data to a temp file in the target directory and
// renames it over path, so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, DefaultFilePermissions); err != nil {
		cleanup()
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("failed to rename %s: %w", tmpName, err)
	}
	return nil
}

// ValidateLink checks that link is an absolute http or https URL
func ValidateLink(link string) (*url.URL, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidLink)
	}
	u, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidLink, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidLink)
	}
	return u, nil
}

// OpenLink opens a news link in the system default browser
func OpenLink(link string) error {
	u, err := ValidateLink(link)
	if err != nil {
		return err
	}
	target := u.String()

	if IsAndroid() {
		return openLinkAndroid(target)
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return exec.Command(OpenCommand, target).Start()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", target).Start()
	case OSLinux:
		return openLinkLinux(target)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openLinkLinux tries xdg-open first, then common browsers
func openLinkLinux(target string) error {
	if err := exec.Command(XDGOpenCommand, target).Start(); err == nil {
		return nil
	}

	for _, browser := range LinuxBrowsers {
		if _, err := exec.LookPath(browser); err == nil {
			return exec.Command(browser, target).Start()
		}
	}

	return fmt.Errorf("no suitable browser found")
}

// openLinkAndroid fires a VIEW intent for the link
func openLinkAndroid(target string) error {
	cmd := exec.Command(AndroidAM, "start", "-a", AndroidViewIntent, "-d", target)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open link: %w", err)
	}
	return nil
}
