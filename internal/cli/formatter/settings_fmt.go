package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/repository"
	"github.com/alexanderramin/gymtrack/internal/units"
	"github.com/dustin/go-humanize"
)

func FormatSettings(s domain.Settings) string {
	sound := StyleDim.Render("off")
	if s.SoundEffects {
		sound = StyleGreen.Render("on")
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s (%s)\n", Dim("Units        "), string(s.UnitSystem), units.New(s.UnitSystem).Label()))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Default rest "), FormatClock(s.DefaultRestTime)))
	b.WriteString(fmt.Sprintf("%s  %s", Dim("Sound effects"), sound))
	return RenderBox("Settings", b.String())
}

// FormatCollections shows what is stored per collection.
func FormatCollections(infos []repository.CollectionInfo) string {
	if len(infos) == 0 {
		return Dim("Nothing stored yet.")
	}
	headers := []string{"COLLECTION", "SIZE", "VERSION", "UPDATED"}
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			Bold(info.Key),
			humanize.Bytes(uint64(max(info.Bytes, 0))),
			strconv.Itoa(info.Version),
			Dim(humanize.Time(info.UpdatedAt)),
		})
	}
	return RenderBox("Storage", RenderTable(headers, rows))
}
