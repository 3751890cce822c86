package excel

import (
	"regexp"
	"strings"

	"weldwatch/app/apperr"
)

// FileInfo is derived from a result file's name, e.g.
// "ABC123_toolX_99.xlsx" -> model ABC123, part 99.
type FileInfo struct {
	Model  string
	PartID string
}

// ImageInfo is derived from an image file's name via the embedded robot
// ("C7") and position ("P77") tokens.
type ImageInfo struct {
	RobotName string
	Position  string
}

var (
	modelPattern    = regexp.MustCompile(`^[A-Za-z0-9]+`)
	extPattern      = regexp.MustCompile(`\..+$`)
	robotPattern    = regexp.MustCompile(`C\d+`)
	positionPattern = regexp.MustCompile(`P\d+`)
)

// ParseFileName splits a result filename into model and part identifier.
// The segment after the last underscore, minus its extension, is the part id;
// the leading alphanumeric run, upper-cased, is the model. The model run
// stops at the first underscore.
func ParseFileName(fileName string) (FileInfo, error) {
	parts := strings.Split(fileName, "_")
	partID := parts[len(parts)-1]
	partID = extPattern.ReplaceAllString(partID, "")
	if partID == "" {
		return FileInfo{}, apperr.Validation("no part id in filename %q", fileName)
	}
	model := modelPattern.FindString(fileName)
	if model == "" {
		return FileInfo{}, apperr.Validation("no model in filename %q", fileName)
	}
	return FileInfo{Model: strings.ToUpper(model), PartID: partID}, nil
}

// ParseImageName finds the robot and position tokens anywhere in an image
// filename.
func ParseImageName(fileName string) (ImageInfo, error) {
	robot := robotPattern.FindString(fileName)
	position := positionPattern.FindString(fileName)
	if robot == "" || position == "" {
		return ImageInfo{}, apperr.Validation("no robot/position tokens in image name %q", fileName)
	}
	return ImageInfo{RobotName: robot, Position: position}, nil
}
