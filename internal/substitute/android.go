package substitute

import "strings"

// AssetIndexURL is the WebView address of a bundled index.html.
const AssetIndexURL = "file:///android_asset/index.html"

// PermissionBlock renders one <uses-permission> line per permission. Short
// names are prefixed with android.permission.; names containing a dot are
// taken as fully qualified.
func PermissionBlock(permissions []string) string {
	lines := make([]string, 0, len(permissions))
	for _, perm := range permissions {
		name := perm
		if !strings.Contains(name, ".") {
			name = "android.permission." + name
		}
		lines = append(lines, `    <uses-permission android:name="`+name+`" />`)
	}
	return strings.Join(lines, "\n")
}

// LoadStatement returns the Java statement that loads the app's start page.
func LoadStatement(remote bool, sourceURL string) string {
	if remote {
		return `webView.loadUrl("` + javaString(sourceURL) + `");`
	}
	return `webView.loadUrl("` + AssetIndexURL + `");`
}

var javaEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func javaString(s string) string {
	return javaEscaper.Replace(s)
}
