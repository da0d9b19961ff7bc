package seed

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type employee struct {
	id         int
	firstName  string
	lastName   string
	hireDate   string
	title      string
	salary     int
	commission any
	managerID  any
	deptID     int
}

func (s *Seeder) generateEmployees(tx *sqlx.Tx) (int, error) {
	for i, d := range departments {
		_, err := tx.Exec(
			`INSERT INTO departments (department_id, department_name, location, budget)
			 VALUES (?, ?, ?, ?)`,
			i+1, d.name, d.location, d.budget,
		)
		if err != nil {
			return 0, err
		}
	}

	perDept := s.cfg.Employees / len(departments)
	if perDept < 2 {
		perDept = 2
	}

	var employees []employee
	id := 1
	for deptIdx, d := range departments {
		titles := jobTitles[d.name]

		// Department head first: highest title, no manager.
		head := s.newEmployee(id, titles[len(titles)-1], deptIdx+1, d.name)
		head.managerID = nil
		head.hireDate = formatDate(s.dateBetween(3650, 1825))
		employees = append(employees, head)
		headID := id
		id++

		for i := 0; i < perDept-1; i++ {
			emp := s.newEmployee(id, s.pick(titles), deptIdx+1, d.name)
			emp.managerID = headID
			employees = append(employees, emp)
			id++
		}
	}

	for _, emp := range employees {
		active := s.rng.Float64() > 0.05
		_, err := tx.Exec(
			`INSERT INTO employees (employee_id, first_name, last_name, email, phone,
				hire_date, job_title, salary, commission_pct, manager_id,
				department_id, is_active)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			emp.id, emp.firstName, emp.lastName, s.emailFor(emp), s.phone(),
			emp.hireDate, emp.title, emp.salary, emp.commission, emp.managerID,
			emp.deptID, active,
		)
		if err != nil {
			return 0, err
		}
	}

	if err := s.generateSalaryHistory(tx, employees); err != nil {
		return 0, err
	}
	if err := s.generateProjects(tx, employees); err != nil {
		return 0, err
	}
	if err := s.generateReviews(tx, employees); err != nil {
		return 0, err
	}

	return len(employees), nil
}

func (s *Seeder) newEmployee(id int, title string, deptID int, deptName string) employee {
	var commission any
	if deptName == "Sales" {
		commission = float64(s.between(5, 20)) / 100
	}
	return employee{
		id:         id,
		firstName:  s.pick(firstNames),
		lastName:   s.pick(lastNames),
		hireDate:   formatDate(s.dateBetween(2920, 30)),
		title:      title,
		salary:     s.salaryFor(title),
		commission: commission,
		deptID:     deptID,
	}
}

func (s *Seeder) salaryFor(title string) int {
	for _, r := range salaryRanges {
		if strings.Contains(title, r.keyword) {
			return s.between(r.low, r.high)
		}
	}
	return s.between(50000, 100000)
}

func (s *Seeder) emailFor(emp employee) string {
	return fmt.Sprintf("%s.%s%d@company.com",
		strings.ToLower(emp.firstName), strings.ToLower(emp.lastName), emp.id)
}

func (s *Seeder) phone() string {
	return fmt.Sprintf("555-%03d-%04d", s.rng.Intn(1000), s.rng.Intn(10000))
}

func (s *Seeder) generateSalaryHistory(tx *sqlx.Tx, employees []employee) error {
	historyID := 1
	for _, emp := range employees {
		changes := s.rng.Intn(5)
		current := emp.salary
		for i := 0; i < changes; i++ {
			old := current * s.between(85, 95) / 100
			_, err := tx.Exec(
				`INSERT INTO salary_history (history_id, employee_id, old_salary,
					new_salary, change_date, change_reason)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				historyID, emp.id, old, current,
				formatDate(s.dateBetween(1460, 10)), s.pick(salaryChangeReasons),
			)
			if err != nil {
				return err
			}
			current = old
			historyID++
		}
	}
	return nil
}

func (s *Seeder) generateProjects(tx *sqlx.Tx, employees []employee) error {
	count := s.cfg.Projects
	if count > len(projectNames) {
		count = len(projectNames)
	}

	for i := 0; i < count; i++ {
		start := s.dateBetween(730, 30)
		end := start.AddDate(0, 0, s.between(30, 365))
		status := "completed"
		if end.After(anchor) {
			if s.rng.Intn(2) == 0 {
				status = "planning"
			} else {
				status = "active"
			}
		}
		_, err := tx.Exec(
			`INSERT INTO projects (project_id, project_name, start_date, end_date, budget, status)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			i+1, projectNames[i], formatDate(start), formatDate(end),
			s.between(50000, 500000), status,
		)
		if err != nil {
			return err
		}

		// 2-6 assignments per project
		assignmentID := i*6 + 1
		for n := 0; n < s.between(2, 6); n++ {
			emp := employees[s.rng.Intn(len(employees))]
			_, err := tx.Exec(
				`INSERT INTO project_assignments (assignment_id, employee_id, project_id,
					role, hours_allocated)
				 VALUES (?, ?, ?, ?, ?)`,
				assignmentID, emp.id, i+1, s.pick(projectRoles), s.between(20, 160),
			)
			if err != nil {
				return err
			}
			assignmentID++
		}
	}
	return nil
}

func (s *Seeder) generateReviews(tx *sqlx.Tx, employees []employee) error {
	reviewID := 1
	for _, emp := range employees {
		if emp.managerID == nil {
			continue
		}
		for n := 0; n < s.rng.Intn(4); n++ {
			_, err := tx.Exec(
				`INSERT INTO performance_reviews (review_id, employee_id, reviewer_id,
					review_date, rating, comments)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				reviewID, emp.id, emp.managerID,
				formatDate(s.dateBetween(1095, 10)), s.between(1, 5), s.pick(reviewComments),
			)
			if err != nil {
				return err
			}
			reviewID++
		}
	}
	return nil
}
