package scoring

// Resource is one recommended learning resource attached to a report entry.
type Resource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"` // article, video, course, template, tool
}

// ContentEntry is the canned narrative and resource list for one category at
// one health bucket.
type ContentEntry struct {
	Message   string     `json:"message"`
	Resources []Resource `json:"resources"`
}

// ReportContentTable holds the full report content keyed by category and
// health bucket. Admins may ship an override file; the resolved table is
// injected into NewReportSelector and the selector never reloads it.
type ReportContentTable map[CategoryKey]map[HealthBucket]ContentEntry

// DefaultReportContent returns the content table shipped with the product.
func DefaultReportContent() ReportContentTable {
	return ReportContentTable{
		CategoryFoundationalStructure: {
			BucketHealthy: {
				Message: "Your business rests on a solid foundation. Your legal structure, governance, and core identity are well established, which positions you to scale without rework later.",
				Resources: []Resource{
					{Title: "Scaling Your Organizational Structure", Description: "When and how to add management layers as headcount grows.", Type: "article"},
					{Title: "Advisory Board Playbook", Description: "Recruiting and running an advisory board that earns its keep.", Type: "template"},
				},
			},
			BucketNeedsTweaking: {
				Message: "Your foundation is workable but has soft spots. A few structural gaps, often in governance or documented ownership, will start to cost you as the business grows.",
				Resources: []Resource{
					{Title: "Entity Structure Checkup", Description: "A walkthrough of common legal-structure mismatches and how to correct them.", Type: "course"},
					{Title: "Operating Agreement Essentials", Description: "The clauses every multi-owner business needs in writing.", Type: "template"},
					{Title: "Roles and Responsibilities Matrix", Description: "Map every critical function to an accountable owner.", Type: "tool"},
				},
			},
			BucketUnhealthy: {
				Message: "Your foundational structure needs urgent attention. Unclear ownership, missing agreements, or an entity type that no longer fits are risks that compound; address these before investing in growth.",
				Resources: []Resource{
					{Title: "Business Foundations Bootcamp", Description: "A guided sequence for getting entity, ownership, and governance basics in place.", Type: "course"},
					{Title: "Operating Agreement Essentials", Description: "The clauses every multi-owner business needs in writing.", Type: "template"},
					{Title: "Finding the Right Business Attorney", Description: "What to look for and what it should cost.", Type: "article"},
				},
			},
		},
		CategoryFinancialPosition: {
			BucketHealthy: {
				Message: "Your finances are in strong shape. You have visibility into cash flow and margins, and your controls are good enough to support confident decision-making.",
				Resources: []Resource{
					{Title: "Forecasting Beyond the Spreadsheet", Description: "Building a rolling 12-month forecast you will actually maintain.", Type: "article"},
					{Title: "Funding Readiness Checklist", Description: "What lenders and investors expect to see before they engage.", Type: "template"},
				},
			},
			BucketNeedsTweaking: {
				Message: "Your financial position is serviceable but fragile in places. Tightening your reporting cadence and margin tracking will give you earlier warning when something drifts.",
				Resources: []Resource{
					{Title: "Cash Flow Basics", Description: "A plain-language primer on reading and managing your cash position.", Type: "course"},
					{Title: "Monthly Close Checklist", Description: "A repeatable month-end routine for small teams.", Type: "template"},
					{Title: "Pricing for Margin", Description: "How to find and fix the products quietly losing you money.", Type: "video"},
				},
			},
			BucketUnhealthy: {
				Message: "Your financial position is a critical risk. Without reliable visibility into cash and margins you are flying blind; stabilizing this comes before everything else.",
				Resources: []Resource{
					{Title: "Cash Flow Basics", Description: "A plain-language primer on reading and managing your cash position.", Type: "course"},
					{Title: "13-Week Cash Forecast", Description: "The short-horizon forecast every cash-constrained business should run weekly.", Type: "tool"},
					{Title: "When to Hire a Bookkeeper", Description: "Signs you have outgrown doing the books yourself.", Type: "article"},
				},
			},
		},
		CategorySalesMarketing: {
			BucketHealthy: {
				Message: "Your sales and marketing engine is performing well. You know who your customer is, your pipeline is measurable, and your message is landing.",
				Resources: []Resource{
					{Title: "Scaling Demand Generation", Description: "Adding channels without diluting what already works.", Type: "article"},
					{Title: "Sales Playbook Template", Description: "Codify your winning sales motion so new hires can repeat it.", Type: "template"},
				},
			},
			BucketNeedsTweaking: {
				Message: "Your sales and marketing are producing, but inconsistently. Sharpening your target-customer definition and tracking your funnel will make results repeatable instead of lucky.",
				Resources: []Resource{
					{Title: "Ideal Customer Profile Workshop", Description: "Narrow your market until your message writes itself.", Type: "course"},
					{Title: "Pipeline Metrics That Matter", Description: "The five numbers to watch weekly and what they tell you.", Type: "article"},
					{Title: "Sales Playbook Template", Description: "Codify your winning sales motion so new hires can repeat it.", Type: "template"},
				},
			},
			BucketUnhealthy: {
				Message: "Your sales and marketing need fundamental work. Without a defined target customer and a repeatable way to reach them, revenue will stay unpredictable.",
				Resources: []Resource{
					{Title: "Ideal Customer Profile Workshop", Description: "Narrow your market until your message writes itself.", Type: "course"},
					{Title: "First Marketing Plan on a Budget", Description: "A 90-day plan for businesses starting from zero.", Type: "template"},
					{Title: "Why Nobody Is Buying", Description: "Diagnosing the most common early-stage sales failures.", Type: "video"},
				},
			},
		},
		CategoryProductService: {
			BucketHealthy: {
				Message: "Your product or service delivery is a genuine strength. Quality is consistent, customers tell you so, and you have a feedback loop that catches problems early.",
				Resources: []Resource{
					{Title: "Productizing Your Expertise", Description: "Turning bespoke work into scalable offerings.", Type: "article"},
					{Title: "Customer Advisory Panels", Description: "Getting structured product input from your best customers.", Type: "template"},
				},
			},
			BucketNeedsTweaking: {
				Message: "Your product or service delivers, but quality and feedback practices are uneven. Formalizing how you collect and act on customer input will protect your reputation as you grow.",
				Resources: []Resource{
					{Title: "Building a Feedback Loop", Description: "Lightweight systems for hearing from customers continuously.", Type: "course"},
					{Title: "Service Quality Scorecard", Description: "Measure delivery consistency across engagements.", Type: "tool"},
				},
			},
			BucketUnhealthy: {
				Message: "Your product or service area needs serious attention. Inconsistent quality or a missing feedback loop erodes trust faster than marketing can rebuild it.",
				Resources: []Resource{
					{Title: "Building a Feedback Loop", Description: "Lightweight systems for hearing from customers continuously.", Type: "course"},
					{Title: "Root-Causing Quality Failures", Description: "A simple method for finding why delivery breaks down.", Type: "article"},
					{Title: "Win-Back Conversations", Description: "Scripts for re-engaging customers you have let down.", Type: "template"},
				},
			},
		},
		CategoryGeneral: {
			BucketHealthy: {
				Message: "Overall, your business operations and planning are in good health. You run on documented processes and a plan you revisit, which is rarer than it sounds.",
				Resources: []Resource{
					{Title: "Annual Planning Rhythm", Description: "A yearly cadence that keeps strategy connected to execution.", Type: "article"},
					{Title: "Delegation Ladder", Description: "A framework for handing off work without losing quality.", Type: "tool"},
				},
			},
			BucketNeedsTweaking: {
				Message: "Your general operations work day to day, but too much lives in your head. Documenting core processes and writing down the plan will make the business less dependent on you.",
				Resources: []Resource{
					{Title: "Process Documentation Sprint", Description: "Capture your ten most critical processes in two weeks.", Type: "course"},
					{Title: "One-Page Business Plan", Description: "A plan short enough to stay current.", Type: "template"},
				},
			},
			BucketUnhealthy: {
				Message: "Your overall operations and planning need a reset. Running entirely on improvisation caps how big the business can get and how much of it you could ever step away from.",
				Resources: []Resource{
					{Title: "One-Page Business Plan", Description: "A plan short enough to stay current.", Type: "template"},
					{Title: "Process Documentation Sprint", Description: "Capture your ten most critical processes in two weeks.", Type: "course"},
					{Title: "Owner Dependence Audit", Description: "Find out exactly what breaks when you take a week off.", Type: "tool"},
				},
			},
		},
	}
}
