// Package roi implements ROI projection for change-management initiatives.
//
// A projection combines the hard numbers of an initiative (budget, salary,
// duration, headcount affected) with organizational readiness scores to
// estimate the expected success rate and the resulting return on investment.
package roi

import (
	"errors"
	"fmt"
	"strings"
)

// readinessDivisor normalizes the sum of the three 0-5 readiness scores
// into a 0-1 multiplier.
const readinessDivisor = 15

// ErrInvalidInput reports a projection request that cannot be computed.
var ErrInvalidInput = errors.New("invalid projection input")

// Inputs are the parameters of one ROI projection.
type Inputs struct {
	// ProjectBudget is the total initiative budget in currency units.
	ProjectBudget float64
	// EmployeeImpact is the number of employees affected by the change.
	EmployeeImpact float64
	// ProjectDuration is the initiative length in months.
	ProjectDuration float64
	// AverageSalary is the monthly salary of an affected employee.
	AverageSalary float64
	// RiskLevel labels the initiative risk (low, medium, high).
	RiskLevel string
	// IndustryType labels the industry the initiative belongs to.
	IndustryType string
	// PreviousSuccess is the historical success rate percentage (0-100).
	PreviousSuccess float64
	// LeadershipAlignment scores leadership buy-in from 0 to 5.
	LeadershipAlignment float64
	// EmployeeReadiness scores workforce readiness from 0 to 5.
	EmployeeReadiness float64
	// CommunicationPlan scores the communication plan from 0 to 5.
	CommunicationPlan float64
	// TrainingBudget is the dedicated training budget in currency units.
	TrainingBudget float64
}

// Result is the outcome of one ROI projection.
type Result struct {
	ROI             float64
	NetBenefit      float64
	ExpectedSuccess float64
	IndustryType    string
	ProjectDuration float64
}

// Validate checks that the inputs describe a computable projection.
func (in Inputs) Validate() error {
	if in.ProjectBudget <= 0 {
		return fmt.Errorf("%w: project budget must be greater than zero", ErrInvalidInput)
	}
	if in.EmployeeImpact <= 0 {
		return fmt.Errorf("%w: employee impact must be greater than zero", ErrInvalidInput)
	}
	if in.ProjectDuration <= 0 {
		return fmt.Errorf("%w: project duration must be greater than zero", ErrInvalidInput)
	}
	if in.AverageSalary <= 0 {
		return fmt.Errorf("%w: average salary must be greater than zero", ErrInvalidInput)
	}
	if strings.TrimSpace(in.IndustryType) == "" {
		return fmt.Errorf("%w: industry type is required", ErrInvalidInput)
	}
	if in.PreviousSuccess < 0 || in.PreviousSuccess > 100 {
		return fmt.Errorf("%w: previous success must be between 0 and 100", ErrInvalidInput)
	}
	for _, score := range []struct {
		name  string
		value float64
	}{
		{"leadership alignment", in.LeadershipAlignment},
		{"employee readiness", in.EmployeeReadiness},
		{"communication plan", in.CommunicationPlan},
	} {
		if score.value < 0 || score.value > 5 {
			return fmt.Errorf("%w: %s must be between 0 and 5", ErrInvalidInput, score.name)
		}
	}
	if in.TrainingBudget < 0 {
		return fmt.Errorf("%w: training budget must not be negative", ErrInvalidInput)
	}
	return nil
}

// Calculate computes the expected success rate, net benefit, and ROI for the
// given inputs.
//
// The expected success rate scales the historical success rate by an
// organizational readiness multiplier derived from the three readiness
// scores. Net benefit is the success-weighted productivity gain minus the
// project budget; ROI expresses that benefit as a percentage of the budget.
func Calculate(in Inputs) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	readinessScore := (in.LeadershipAlignment + in.EmployeeReadiness + in.CommunicationPlan) / readinessDivisor
	expectedSuccess := in.PreviousSuccess * readinessScore

	productivityGain := in.EmployeeImpact * in.AverageSalary * in.ProjectDuration
	netBenefit := productivityGain*(expectedSuccess/100) - in.ProjectBudget
	roi := netBenefit / in.ProjectBudget * 100

	return Result{
		ROI:             roi,
		NetBenefit:      netBenefit,
		ExpectedSuccess: expectedSuccess,
		IndustryType:    strings.TrimSpace(in.IndustryType),
		ProjectDuration: in.ProjectDuration,
	}, nil
}
