package usecase

// Defaults for absent metrics. Bay hours default differently when building
// the prompt and when running the rule engine; both values are kept as is.
const (
	PromptDefaultBayHours   = 0.0
	FallbackDefaultBayHours = 8.0

	defaultName        = "Unknown"
	defaultDesignation = "N/A"
	defaultClusterType = "Unknown"
)

// Risk ladder thresholds.
const (
	highRiskEfficiency   = 60
	highRiskAttendance   = 75
	mediumRiskEfficiency = 80
	mediumRiskAttendance = 90
)

// Rule engine thresholds.
const (
	lowEfficiency      = 70
	moderateEfficiency = 85
	lowAttendance      = 85
	longBayHours       = 9
	shortBayHours      = 6
)

var requiredFields = []string{"icon", "title", "description", "priority"}

const promptTemplate = `
You are an AI HR consultant analyzing employee performance data. Generate 4 personalized, actionable recommendations.

EMPLOYEE PROFILE:
- Name: {{name}}
- Designation: {{designation}}
- Efficiency: {{efficiency}}%
- Attendance: {{attendance}}%
- Bay Hours: {{bayHours}} hours/day
- Behavior Type: {{clusterType}}
- Risk Level: {{riskLevel}}

CONTEXT ANALYSIS:
- If efficiency < 70%: Focus on skill development and training
- If attendance < 85%: Address attendance issues and support needs
- If bayHours > 9: Work-life balance and burnout prevention
- If bayHours < 6: Engagement and collaboration improvement

REQUIREMENTS:
1. Generate exactly 4 recommendations
2. Make them specific to this employee's data
3. Include actionable steps
4. Vary priority levels (high, medium, low)
5. Choose appropriate FontAwesome icons

Return ONLY a valid JSON array in this exact format:
[
  {
    "icon": "fas fa-chart-line",
    "title": "Performance Enhancement",
    "description": "Specific actionable recommendation based on employee data",
    "priority": "high"
  },
  {
    "icon": "fas fa-calendar-check",
    "title": "Another Recommendation",
    "description": "Another specific recommendation",
    "priority": "medium"
  }
]

AVAILABLE ICONS: fa-chart-line, fa-calendar-check, fa-user-clock, fa-building, fa-balance-scale, fa-trophy, fa-target, fa-users, fa-clock, fa-life-ring, fa-star, fa-graduation-cap, fa-book, fa-lightbulb, fa-heart, fa-cog

Focus on: Performance improvement, Work-life balance, Career development, Team collaboration, Health & wellness.
`
