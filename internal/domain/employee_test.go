package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/roster-service/internal/domain"
)

func TestNewEmployee_Defaults(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	emp := domain.NewEmployee(domain.EmployeeFields{Name: "Ada"})

	require.True(t, strings.HasPrefix(emp.ID, domain.LocalIDPrefix))
	require.Equal(t, "Ada", emp.Name)
	require.Empty(t, emp.Email)
	require.Empty(t, emp.Role)
	require.Empty(t, emp.Department)
	require.Zero(t, emp.Salary)
	require.True(t, emp.CreatedAt.After(before))
}

func TestNewEmployee_KeepsSuppliedValues(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	emp := domain.NewEmployee(domain.EmployeeFields{
		ID:         "emp_7",
		Name:       "Grace",
		Email:      "grace@example.com",
		Role:       "QA Engineer",
		Department: "Engineering",
		Salary:     70000,
		CreatedAt:  created,
	})

	require.Equal(t, "emp_7", emp.ID)
	require.Equal(t, created, emp.CreatedAt)
	require.Equal(t, 70000.0, emp.Salary)
	require.Equal(t, emp, domain.NewEmployee(emp.Fields()))
}

func TestNewEmployee_NegativeSalaryClamped(t *testing.T) {
	emp := domain.NewEmployee(domain.EmployeeFields{Salary: -10})
	require.Zero(t, emp.Salary)
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := domain.GenerateID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestEmployee_MatchesSearch(t *testing.T) {
	emp := domain.NewEmployee(domain.EmployeeFields{
		Name:       "Leanne Graham",
		Email:      "Sincere@april.biz",
		Role:       "Software Engineer",
		Department: "Engineering",
	})

	cases := map[string]bool{
		"":          true,
		"leanne":    true,
		"APRIL.BIZ": true,
		"software":  true,
		"engin":     true,
		"marketing": false,
	}
	for term, want := range cases {
		require.Equal(t, want, emp.MatchesSearch(term), "term %q", term)
	}
}

func TestEmployee_MatchesDepartments(t *testing.T) {
	emp := domain.NewEmployee(domain.EmployeeFields{Department: "Sales"})

	require.True(t, emp.MatchesDepartments(nil))
	require.True(t, emp.MatchesDepartments([]string{}))
	require.True(t, emp.MatchesDepartments([]string{"HR", "Sales"}))
	require.False(t, emp.MatchesDepartments([]string{"HR"}))
	require.False(t, emp.MatchesDepartments([]string{"sales"}))
}
