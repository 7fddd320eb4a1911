package services

import (
	"testing"
	"time"

	"github.com/hrcore/hr-admin-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func birthdayUser(name string, month time.Month, day int) models.User {
	// Birth year is irrelevant to the window.
	b := time.Date(1990, month, day, 0, 0, 0, 0, time.UTC)
	return models.User{Name: name, Birthday: &b}
}

func names(users []models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Name
	}
	return out
}

func TestUpcomingBirthdays_NoWrap(t *testing.T) {
	today := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	users := []models.User{
		birthdayUser("on-start", time.March, 10),
		birthdayUser("inside", time.April, 1),
		birthdayUser("on-end", time.June, 10),
		birthdayUser("before", time.March, 9),
		birthdayUser("after", time.June, 11),
	}

	got := UpcomingBirthdays(users, today)
	assert.ElementsMatch(t, []string{"on-start", "inside", "on-end"}, names(got))
}

func TestUpcomingBirthdays_WrapsYearBoundary(t *testing.T) {
	// Nov 20 → Feb 20: the window crosses into the next year.
	today := time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC)

	users := []models.User{
		birthdayUser("january", time.January, 15),
		birthdayUser("december", time.December, 31),
		birthdayUser("yesterday", time.November, 19),
		birthdayUser("late-feb", time.February, 21),
	}

	got := UpcomingBirthdays(users, today)
	assert.ElementsMatch(t, []string{"january", "december"}, names(got))
}

func TestUpcomingBirthdays_IgnoresUsersWithoutBirthday(t *testing.T) {
	today := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	users := []models.User{
		{Name: "no-birthday"},
		birthdayUser("inside", time.April, 1),
	}

	got := UpcomingBirthdays(users, today)
	assert.ElementsMatch(t, []string{"inside"}, names(got))
}
