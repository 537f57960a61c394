package validate

import "strings"

// Ambient variables every shell or CI runner injects. Undeclared-
// variable checks skip these so a schema never has to declare PATH.
var systemEnvVars = map[string]bool{
	"path": true, "home": true, "user": true, "shell": true, "pwd": true,
	"oldpwd": true, "lang": true, "term": true, "tmpdir": true,
	"shlvl": true, "hostname": true, "logname": true, "editor": true,
	"pager": true, "browser": true, "display": true, "ssh_auth_sock": true,
	"mail": true, "ifs": true, "ps1": true, "ps2": true, "ci": true,
}

var systemEnvPrefixes = []string{
	"lc_", "xdg_", "github_", "gitlab_", "runner_", "npm_", "node_",
}

// isAmbientVar reports whether a live variable name belongs to the
// shell/platform/CI housekeeping set.
func isAmbientVar(name string) bool {
	n := strings.ToLower(name)
	if systemEnvVars[n] {
		return true
	}
	for _, prefix := range systemEnvPrefixes {
		if strings.HasPrefix(n, prefix) {
			return true
		}
	}
	return false
}
