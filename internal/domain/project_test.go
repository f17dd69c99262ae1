package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMilestoneLabel(t *testing.T) {
	cases := []struct {
		milestone Milestone
		label     string
	}{
		{MilestoneIdeation, "Ideation"},
		{MilestonePlanning, "Planning & Design"},
		{MilestoneDevelopment, "Development"},
		{MilestoneTesting, "Testing"},
		{MilestoneCompleted, "Completed"},
		{Milestone(30), "Unknown"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.label, tc.milestone.Label())
	}
}

func TestValidMilestone(t *testing.T) {
	for _, m := range []Milestone{0, 25, 50, 75, 100} {
		assert.True(t, ValidMilestone(m))
	}
	for _, m := range []Milestone{-1, 1, 24, 99, 101} {
		assert.False(t, ValidMilestone(m))
	}
}

func TestValidProjectStatus(t *testing.T) {
	assert.True(t, ValidProjectStatus(ProjectStatusPending))
	assert.True(t, ValidProjectStatus(ProjectStatusApproved))
	assert.True(t, ValidProjectStatus(ProjectStatusChanges))
	assert.False(t, ValidProjectStatus("rejected"))
	assert.False(t, ValidProjectStatus(""))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleStudent))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("faculty"))
}
