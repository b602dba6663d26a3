package materialize

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	// Decoders used to inspect launcher icons.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// IconFileName is the launcher icon name written into every density folder.
const IconFileName = "ic_launcher.png"

// IconDensity is one launcher icon slot and its nominal edge in pixels.
type IconDensity struct {
	Folder string
	Size   int
}

// IconDensities lists the launcher icon slots in ascending density.
var IconDensities = []IconDensity{
	{Folder: "mipmap-mdpi", Size: 48},
	{Folder: "mipmap-hdpi", Size: 72},
	{Folder: "mipmap-xhdpi", Size: 96},
	{Folder: "mipmap-xxhdpi", Size: 144},
	{Folder: "mipmap-xxxhdpi", Size: 192},
}

// errIconMissing is returned by installIcon when the icon file does not exist.
var errIconMissing = errors.New("icon file not found")

// iconReport summarises what installIcon did.
type iconReport struct {
	Copied   int
	Format   string
	Width    int
	Height   int
	Warnings []string
}

// installIcon copies iconPath unchanged into every density folder under
// resDir. The image header is decoded only to report problems; an unreadable
// or non-square image still gets copied.
func installIcon(iconPath, resDir string) (iconReport, error) {
	var report iconReport

	info, err := os.Stat(iconPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return report, errIconMissing
		}
		return report, err
	}
	if info.IsDir() {
		return report, fmt.Errorf("icon path %s is a directory", iconPath)
	}

	cfg, format, err := inspectIcon(iconPath)
	switch {
	case err != nil:
		report.Warnings = append(report.Warnings, fmt.Sprintf("icon is not a recognised image: %v", err))
	default:
		report.Format, report.Width, report.Height = format, cfg.Width, cfg.Height
		if cfg.Width != cfg.Height {
			report.Warnings = append(report.Warnings, fmt.Sprintf("icon is not square (%dx%d)", cfg.Width, cfg.Height))
		}
		if format != "png" {
			report.Warnings = append(report.Warnings, fmt.Sprintf("icon is %s but is installed as %s", format, IconFileName))
		}
	}

	for _, density := range IconDensities {
		target := filepath.Join(resDir, density.Folder, IconFileName)
		if err := copyPath(iconPath, target); err != nil {
			return report, err
		}
		report.Copied++
	}

	return report, nil
}

func inspectIcon(path string) (image.Config, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, "", err
	}
	defer f.Close()

	return image.DecodeConfig(f)
}
