package seed

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// analyticsSession carries the generated state page views, events and
// conversions are derived from.
type analyticsSession struct {
	id        string
	user      int
	start     time.Time
	duration  int
	pageViews int
}

func (s *Seeder) generateAnalytics(tx *sqlx.Tx) error {
	if err := s.generateUsers(tx); err != nil {
		return err
	}

	sessions, err := s.generateSessions(tx)
	if err != nil {
		return err
	}
	if err := s.generatePageViews(tx, sessions); err != nil {
		return err
	}
	if err := s.generateEvents(tx, sessions); err != nil {
		return err
	}
	if err := s.generateConversions(tx, sessions); err != nil {
		return err
	}

	if err := s.generateABTests(tx); err != nil {
		return err
	}
	return s.generateDailyMetrics(tx)
}

func (s *Seeder) generateUsers(tx *sqlx.Tx) error {
	for id := 1; id <= s.cfg.Users; id++ {
		// About 30% of tracked users never leave an email.
		var email any
		if s.rng.Float64() > 0.3 {
			email = fmt.Sprintf("user%d@example.com", id)
		}
		_, err := tx.Exec(
			`INSERT INTO users (user_id, anonymous_id, email, signup_date,
				signup_source, country, device_type, is_premium)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, fmt.Sprintf("anon-%06d-%08x", id, s.rng.Uint32()), email,
			formatDate(s.dateBetween(730, 1)),
			s.pick(signupSources), s.pick(userCountries), s.pick(deviceTypes),
			s.rng.Float64() > 0.85,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) generateSessions(tx *sqlx.Tx) ([]analyticsSession, error) {
	sessions := make([]analyticsSession, 0, s.cfg.Sessions)
	for n := 1; n <= s.cfg.Sessions; n++ {
		start := s.dateBetween(365, 1).Add(time.Duration(s.rng.Intn(86400)) * time.Second)
		sess := analyticsSession{
			id:        fmt.Sprintf("s-%06d-%08x", n, s.rng.Uint32()),
			user:      s.between(1, s.cfg.Users),
			start:     start,
			duration:  s.between(30, 1800),
			pageViews: s.between(1, 15),
		}
		sessions = append(sessions, sess)

		ref := referrers[s.rng.Intn(len(referrers))]
		var campaign any
		if s.rng.Float64() > 0.7 {
			campaign = fmt.Sprintf("campaign_%d", s.between(1, 10))
		}
		_, err := tx.Exec(
			`INSERT INTO sessions (session_id, user_id, session_start, session_end,
				landing_page, exit_page, device_type, browser, os,
				referrer_source, referrer_medium, utm_campaign,
				page_views, session_duration_seconds)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			sess.id, sess.user,
			formatTimestamp(start),
			formatTimestamp(start.Add(time.Duration(sess.duration)*time.Second)),
			s.pick(pages[:5]), s.pick(pages),
			s.pick(deviceTypes), s.pick(browsers), s.pick(operatingSystems),
			ref.source, ref.medium, campaign,
			sess.pageViews, sess.duration,
		)
		if err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

func (s *Seeder) generatePageViews(tx *sqlx.Tx, sessions []analyticsSession) error {
	viewID := 1
	for _, sess := range sessions {
		at := sess.start
		for n := 0; n < sess.pageViews; n++ {
			timeOnPage := s.between(5, 180)
			_, err := tx.Exec(
				`INSERT INTO page_views (view_id, session_id, user_id, page_url,
					view_timestamp, time_on_page_seconds, scroll_depth_pct)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				viewID, sess.id, sess.user, s.pick(pages),
				formatTimestamp(at), timeOnPage, s.between(10, 100),
			)
			if err != nil {
				return err
			}
			at = at.Add(time.Duration(timeOnPage) * time.Second)
			viewID++
		}
	}
	return nil
}

func (s *Seeder) generateEvents(tx *sqlx.Tx, sessions []analyticsSession) error {
	eventID := 1
	for _, sess := range sessions {
		at := sess.start
		for n := 0; n < s.between(1, 10); n++ {
			et := eventTypes[s.rng.Intn(len(eventTypes))]
			_, err := tx.Exec(
				`INSERT INTO events (event_id, session_id, user_id, event_name,
					event_category, event_timestamp, event_properties, page_url)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				eventID, sess.id, sess.user, et.name, et.category,
				formatTimestamp(at),
				fmt.Sprintf(`{"value": %d}`, s.between(1, 100)),
				s.pick(pages),
			)
			if err != nil {
				return err
			}
			at = at.Add(time.Duration(s.between(5, 60)) * time.Second)
			eventID++
		}
	}
	return nil
}

func (s *Seeder) generateConversions(tx *sqlx.Tx, sessions []analyticsSession) error {
	conversionID := 1
	for _, sess := range sessions {
		// Roughly one session in six converts.
		if s.rng.Intn(6) != 0 {
			continue
		}
		_, err := tx.Exec(
			`INSERT INTO conversions (conversion_id, user_id, session_id,
				conversion_type, conversion_value, conversion_timestamp,
				attribution_channel)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			conversionID, sess.user, sess.id, s.pick(conversionTypes),
			float64(s.between(1000, 50000))/100,
			formatTimestamp(sess.start.Add(time.Duration(s.between(1, sess.duration))*time.Second)),
			s.pick(attributionChannels),
		)
		if err != nil {
			return err
		}
		conversionID++
	}
	return nil
}

func (s *Seeder) generateABTests(tx *sqlx.Tx) error {
	for id, t := range abTests {
		start := s.dateBetween(180, 30)
		var end any
		if t.status == "completed" {
			end = formatDate(start.AddDate(0, 0, s.between(14, 60)))
		}
		_, err := tx.Exec(
			`INSERT INTO ab_tests (test_id, test_name, start_date, end_date, status)
			 VALUES (?, ?, ?, ?, ?)`,
			id+1, t.name, formatDate(start), end, t.status,
		)
		if err != nil {
			return err
		}
	}

	assignmentID := 1
	for user := 1; user <= s.cfg.Users; user++ {
		// Roughly 80% of users are enrolled in one test.
		if s.rng.Float64() > 0.8 {
			continue
		}
		_, err := tx.Exec(
			`INSERT INTO ab_test_assignments (assignment_id, test_id, user_id,
				variant, assigned_at)
			 VALUES (?, ?, ?, ?, ?)`,
			assignmentID, s.between(1, len(abTests)), user, s.pick(abVariants),
			formatTimestamp(s.dateBetween(180, 1).Add(time.Duration(s.rng.Intn(86400))*time.Second)),
		)
		if err != nil {
			return err
		}
		assignmentID++
	}
	return nil
}

func (s *Seeder) generateDailyMetrics(tx *sqlx.Tx) error {
	first := anchor.AddDate(0, 0, -s.cfg.MetricDays)
	for day := 0; day < s.cfg.MetricDays; day++ {
		date := formatDate(first.AddDate(0, 0, day))
		for _, metric := range metricNames {
			for _, segment := range metricSegments {
				value := s.metricValue(metric)
				if segment != "all" {
					value *= float64(s.between(15, 35)) / 100
				}
				_, err := tx.Exec(
					`INSERT INTO daily_metrics (metric_date, metric_name, metric_value, segment)
					 VALUES (?, ?, ?, ?)`,
					date, metric, float64(int(value*10000))/10000, segment,
				)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *Seeder) metricValue(metric string) float64 {
	switch metric {
	case "daily_active_users":
		return float64(s.between(100, 500))
	case "page_views":
		return float64(s.between(500, 2000))
	case "sessions":
		return float64(s.between(200, 800))
	case "conversions":
		return float64(s.between(10, 100))
	case "revenue":
		return float64(s.between(50000, 500000)) / 100
	case "bounce_rate":
		return float64(s.between(3000, 7000)) / 10000
	case "avg_session_duration":
		return float64(s.between(60, 300))
	case "new_users":
		return float64(s.between(20, 100))
	default:
		return float64(s.between(10, 100))
	}
}
