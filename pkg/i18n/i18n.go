// Package i18n provides the UI strings for the supported languages and
// relative-time formatting for line and archive timestamps.
package i18n

import (
	"fmt"
	"time"

	"tableflip.dev/notepad/pkg/settings"
)

// Translations is the full string set for one language. The *Ago fields
// are printf formats taking the count.
type Translations struct {
	ArchiveNotice string
	ArchiveEmpty  string
	Restore       string
	Delete        string
	Nuke          string
	NukeConfirm   string
	EmptyHint     string

	JustNow   string
	MinsAgo   string
	HoursAgo  string
	DaysAgo   string
	Yesterday string

	ArchivedJustNow   string
	ArchivedMinsAgo   string
	ArchivedHoursAgo  string
	ArchivedDaysAgo   string
	ArchivedYesterday string
	ArchivedPrefix    string
}

var table = map[settings.Language]Translations{
	settings.English: {
		ArchiveNotice:     "archives are deleted after 7 days",
		ArchiveEmpty:      "no archived sections yet",
		Restore:           "restore",
		Delete:            "delete",
		Nuke:              "nuke",
		NukeConfirm:       "delete all archives? this cannot be undone",
		EmptyHint:         "type here",
		JustNow:           "just now",
		MinsAgo:           "updated %dm ago",
		HoursAgo:          "updated %dh ago",
		DaysAgo:           "updated %dd ago",
		Yesterday:         "updated yesterday",
		ArchivedJustNow:   "archived just now",
		ArchivedMinsAgo:   "archived %dm ago",
		ArchivedHoursAgo:  "archived %dh ago",
		ArchivedDaysAgo:   "archived %dd ago",
		ArchivedYesterday: "archived yesterday",
		ArchivedPrefix:    "archived",
	},
	settings.Spanish: {
		ArchiveNotice:     "los archivos se eliminan después de 7 días",
		ArchiveEmpty:      "no hay secciones archivadas aún",
		Restore:           "restaurar",
		Delete:            "eliminar",
		Nuke:              "eliminar todo",
		NukeConfirm:       "¿eliminar todos los archivos? esto no se puede deshacer",
		EmptyHint:         "escribe aquí",
		JustNow:           "ahora mismo",
		MinsAgo:           "actualizado hace %dm",
		HoursAgo:          "actualizado hace %dh",
		DaysAgo:           "actualizado hace %dd",
		Yesterday:         "actualizado ayer",
		ArchivedJustNow:   "archivado ahora mismo",
		ArchivedMinsAgo:   "archivado hace %dm",
		ArchivedHoursAgo:  "archivado hace %dh",
		ArchivedDaysAgo:   "archivado hace %dd",
		ArchivedYesterday: "archivado ayer",
		ArchivedPrefix:    "archivado",
	},
	settings.Japanese: {
		ArchiveNotice:     "アーカイブは7日後に削除されます",
		ArchiveEmpty:      "アーカイブされたセクションはまだありません",
		Restore:           "復元",
		Delete:            "削除",
		Nuke:              "全削除",
		NukeConfirm:       "すべてのアーカイブを削除しますか？これは元に戻せません",
		EmptyHint:         "ここに入力",
		JustNow:           "たった今",
		MinsAgo:           "%d分前に更新",
		HoursAgo:          "%d時間前に更新",
		DaysAgo:           "%d日前に更新",
		Yesterday:         "昨日更新",
		ArchivedJustNow:   "たった今アーカイブ",
		ArchivedMinsAgo:   "%d分前にアーカイブ",
		ArchivedHoursAgo:  "%d時間前にアーカイブ",
		ArchivedDaysAgo:   "%d日前にアーカイブ",
		ArchivedYesterday: "昨日アーカイブ",
		ArchivedPrefix:    "アーカイブ",
	},
	settings.Chinese: {
		ArchiveNotice:     "存档将在7天后删除",
		ArchiveEmpty:      "暂无存档部分",
		Restore:           "恢复",
		Delete:            "删除",
		Nuke:              "全部删除",
		NukeConfirm:       "删除所有存档？此操作无法撤销",
		EmptyHint:         "在此输入",
		JustNow:           "刚刚",
		MinsAgo:           "%d分钟前更新",
		HoursAgo:          "%d小时前更新",
		DaysAgo:           "%d天前更新",
		Yesterday:         "昨天更新",
		ArchivedJustNow:   "刚刚存档",
		ArchivedMinsAgo:   "%d分钟前存档",
		ArchivedHoursAgo:  "%d小时前存档",
		ArchivedDaysAgo:   "%d天前存档",
		ArchivedYesterday: "昨天存档",
		ArchivedPrefix:    "存档",
	},
}

// For returns the translation set for a language, falling back to
// English for anything unrecognized.
func For(lang settings.Language) Translations {
	if t, ok := table[lang]; ok {
		return t
	}
	return table[settings.English]
}

// FormatUpdated renders a line's updatedAt relative to now.
func (t Translations) FormatUpdated(updatedAt int64, now time.Time) string {
	return formatRelative(updatedAt, now,
		t.JustNow, t.MinsAgo, t.HoursAgo, t.Yesterday, t.DaysAgo, "")
}

// FormatArchived renders an archive timestamp relative to now. Entries
// older than a week fall back to an absolute date with the archived
// prefix.
func (t Translations) FormatArchived(archivedAt int64, now time.Time) string {
	return formatRelative(archivedAt, now,
		t.ArchivedJustNow, t.ArchivedMinsAgo, t.ArchivedHoursAgo,
		t.ArchivedYesterday, t.ArchivedDaysAgo, t.ArchivedPrefix)
}

func formatRelative(ms int64, now time.Time, justNow, minsAgo, hoursAgo, yesterday, daysAgo, prefix string) string {
	diff := now.Sub(time.UnixMilli(ms))
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case mins < 1:
		return justNow
	case mins < 60:
		return fmt.Sprintf(minsAgo, mins)
	case hours < 24:
		return fmt.Sprintf(hoursAgo, hours)
	case days == 1:
		return yesterday
	case days < 7:
		return fmt.Sprintf(daysAgo, days)
	}

	date := time.UnixMilli(ms).Format("Jan 2")
	if prefix == "" {
		return date
	}
	return prefix + " " + date
}
