package card

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"go.uber.org/zap"
)

// CanonicalLayout is the timestamp format used on every card.
const CanonicalLayout = "2006-01-02 15:04:05"

var canonicalPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)

var errNoDate = errors.New("no date found")

var weekdays = []struct {
	name string
	day  time.Weekday
}{
	{"friday", time.Friday},
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// DateNormalizer turns exact, fuzzy or weekday date expressions into a canonical
// timestamp that is never before today.
type DateNormalizer struct {
	Now    func() time.Time
	Logger *zap.Logger

	natural *when.Parser
}

func NewDateNormalizer(logger *zap.Logger) *DateNormalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &DateNormalizer{
		Now:     time.Now,
		Logger:  logger,
		natural: w,
	}
}

// Normalize resolves dateString against the current time. Unparsable input and
// past dates without a weekday name resolve to fallback.
func (n *DateNormalizer) Normalize(dateString, fallback string) string {
	now := n.Now()

	parsed, err := n.parse(dateString, now)
	if err != nil {
		n.Logger.Info("date parsing failed, using fallback",
			zap.String("input", dateString),
			zap.String("fallback", fallback),
			zap.Error(err))
		return fallback
	}

	if !startOfDay(parsed, now.Location()).Before(startOfDay(now, now.Location())) {
		return parsed.Format(CanonicalLayout)
	}

	day, ok := mentionedWeekday(dateString)
	if !ok {
		return fallback
	}
	return now.AddDate(0, 0, daysUntil(now.Weekday(), day)).Format(CanonicalLayout)
}

func (n *DateNormalizer) parse(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if canonicalPattern.MatchString(s) {
		return time.ParseInLocation(CanonicalLayout, s, now.Location())
	}
	// Absolute formats always carry a digit; relative phrases go to the
	// natural-language rules.
	if strings.IndexFunc(s, unicode.IsDigit) >= 0 {
		if t, err := dateparse.ParseIn(s, now.Location()); err == nil {
			if t.Year() == 0 {
				t = time.Date(now.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, now.Location())
			}
			return t, nil
		}
	}
	r, err := n.natural.Parse(s, now)
	if err != nil {
		return time.Time{}, err
	}
	if r == nil {
		return time.Time{}, errNoDate
	}
	// The rules carry the clock of now over unless the phrase names a time.
	if sameClock(r.Time, now) {
		return startOfDay(r.Time, now.Location()), nil
	}
	return r.Time, nil
}

func sameClock(a, b time.Time) bool {
	ah, am, as := a.Clock()
	bh, bm, bs := b.Clock()
	return ah == bh && am == bm && as == bs
}

// daysUntil counts days to the next occurrence of target, never zero.
func daysUntil(current, target time.Weekday) int {
	days := (int(target) - int(current) + 7) % 7
	if days == 0 {
		days = 7
	}
	return days
}

func mentionedWeekday(s string) (time.Weekday, bool) {
	lower := strings.ToLower(s)
	for _, w := range weekdays {
		if strings.Contains(lower, w.name) {
			return w.day, true
		}
	}
	return 0, false
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
