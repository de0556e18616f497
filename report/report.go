package report

import (
	"encoding/base64"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/radar-check/br040/api/compliance"
	"github.com/radar-check/br040/api/model"
)

//Meta carries the header fields stamped onto every report
type Meta struct {
	Date        time.Time
	Responsible string
}

//sortByKm returns a copy of the radares ordered by kilometer post
func sortByKm(radares []*model.Radar) []*model.Radar {

	sorted := make([]*model.Radar, len(radares))
	copy(sorted, radares)
	sort.SliceStable(sorted, func(i, j int) bool {
		return compliance.ParseKm(sorted[i].Km) < compliance.ParseKm(sorted[j].Km)
	})
	return sorted
}

//lastChecklistByRadar picks the checklist with the newest inspection date per radar
func lastChecklistByRadar(checklists []*model.Checklist) map[string]*model.Checklist {

	last := make(map[string]*model.Checklist)
	for _, checklist := range checklists {
		current, ok := last[checklist.RadarId]
		if !ok || checklist.Date.After(current.Date) {
			last[checklist.RadarId] = checklist
		}
	}
	return last
}

//classCode is the short classification text used in the original spreadsheet
func classCode(class model.RoadClass) string {

	switch class {
	case model.ViaRuralUrbana:
		return "RCU"
	case model.ViaUrbana:
		return "URBANA"
	default:
		return "RURAL"
	}
}

func formatDate(t time.Time) string {

	return t.Format("02/01/2006 15:04")
}

//decodePhoto splits a data-url into raw image bytes and a gofpdf image type
func decodePhoto(photo model.Photo) ([]byte, string, error) {

	comma := strings.Index(photo.Data, ",")
	if !strings.HasPrefix(photo.Data, "data:image/") || comma < 0 {
		return nil, "", errors.New("photo is not an image data url")
	}

	imageType := "JPG"
	if strings.HasPrefix(photo.Data, "data:image/png") {
		imageType = "PNG"
	}

	raw, err := base64.StdEncoding.DecodeString(photo.Data[comma+1:])
	if err != nil {
		return nil, "", errors.Wrap(err, "unable to decode photo")
	}
	return raw, imageType, nil
}
