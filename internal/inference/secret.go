package inference

import "strings"

var secretSubstrings = []string{
	"password", "secret", "token", "auth",
	"private", "credential", "jwt", "bearer", "key",
}

var secretSuffixes = []string{"_key", "_secret", "_token"}

// IsSecretName reports whether a variable name looks like it holds a
// credential. The match is heuristic and deliberately conservative:
// names like PUBLIC_KEY_ID flag true, which is preferable to leaking a
// real secret into an example file.
func IsSecretName(name string) bool {
	n := strings.ToLower(name)

	for _, s := range secretSubstrings {
		if strings.Contains(n, s) {
			return true
		}
	}

	if strings.HasPrefix(n, "api_key") {
		return true
	}

	for _, s := range secretSuffixes {
		if strings.HasSuffix(n, s) {
			return true
		}
	}

	return false
}
