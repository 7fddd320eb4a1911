package i18n

import "github.com/hrcore/hr-admin-api/internal/constants"

// Messages returns the UI message catalog for a locale. Unknown locales fall
// back to the default catalog.
func Messages(locale string) map[string]string {
	if msgs, ok := catalogs[locale]; ok {
		return msgs
	}
	return catalogs[constants.DefaultLocale]
}

// Supported reports whether the locale has a catalog.
func Supported(locale string) bool {
	_, ok := catalogs[locale]
	return ok
}

var catalogs = map[string]map[string]string{
	constants.LocaleVietnamese: {
		"dashboard":          "Bảng điều khiển",
		"users":              "Người dùng",
		"departments":        "Phòng ban",
		"projects":           "Dự án",
		"tasks":              "Công việc",
		"attendance":         "Chấm công",
		"check_in":           "Chấm công vào",
		"check_out":          "Chấm công ra",
		"already_checked_in": "Đã chấm công hôm nay",
		"not_checked_in":     "Chưa chấm công vào",
		"checked_out":        "Đã chấm công ra",
	},
	constants.LocaleEnglish: {
		"dashboard":          "Dashboard",
		"users":              "Users",
		"departments":        "Departments",
		"projects":           "Projects",
		"tasks":              "Tasks",
		"attendance":         "Attendance",
		"check_in":           "Check in",
		"check_out":          "Check out",
		"already_checked_in": "Already checked in today",
		"not_checked_in":     "Not checked in yet",
		"checked_out":        "Already checked out",
	},
}
