package mockapi

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ganot/talentflow/internal/domain/assessment"
	"github.com/ganot/talentflow/internal/domain/candidate"
	"github.com/ganot/talentflow/internal/domain/job"
)

// SeedConfig sizes the generated dataset. Zero values fall back to the
// defaults the original frontend shipped with.
type SeedConfig struct {
	Jobs       int
	Candidates int
	Seed       int64
}

var jobTitles = []string{
	"Senior Frontend Developer", "Backend Engineer", "Full Stack Developer",
	"Data Analyst", "ML Engineer", "QA Engineer", "DevOps Engineer",
	"Product Designer", "Mobile Engineer", "Security Engineer", "SRE",
	"Platform Engineer",
}

var (
	departments  = []string{"Engineering", "Design", "Marketing", "Sales"}
	jobLocations = []string{"Remote", "San Francisco, CA", "New York, NY", "London, UK"}
	jobTypes     = []string{"full-time", "contract", "part-time", "internship"}
	jobLevels    = []string{"junior", "mid", "senior", "lead"}
	jobTags      = []string{"react", "node", "aws", "docker", "typescript"}
)

var firstNames = []string{
	"Lisa", "David", "Sophia", "Ethan", "Ava", "Noah", "Mia", "Liam", "Olivia", "Isabella",
	"Mason", "Lucas", "Emma", "Amelia", "James", "Henry", "Ella", "Benjamin", "Harper", "Michael",
}

var lastNames = []string{
	"Thompson", "Kim", "Rodriguez", "Patel", "Nguyen", "Garcia", "Johnson", "Brown", "Davis", "Wilson",
	"Lee", "Clark", "Lewis", "Walker", "Young", "King", "Wright", "Scott", "Green", "Baker",
}

var cities = []string{
	"Seattle, WA", "Austin, TX", "New York, NY", "San Francisco, CA", "London, UK",
	"Toronto, ON", "Berlin, DE", "Bengaluru, IN", "Delhi, IN", "Remote",
}

var skillBank = []string{
	"Python", "Machine Learning", "SQL", "TensorFlow", "PyTorch", "Docker", "Kubernetes", "AWS", "GCP", "Azure",
	"React", "Node.js", "TypeScript", "Java", "Spring", "Django", "Flask", "Pandas", "NumPy", "scikit-learn",
	"Terraform", "Spark", "REST", "GraphQL",
}

// Seed populates the dataset with jobs, candidates and the three stock
// assessment sets.
func (d *Data) Seed(cfg SeedConfig) {
	if cfg.Jobs <= 0 {
		cfg.Jobs = 100
	}
	if cfg.Candidates <= 0 {
		cfg.Candidates = 1200
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	d.mu.Lock()
	defer d.mu.Unlock()

	d.jobs = seedJobs(rng, cfg.Jobs)
	d.candidates = seedCandidates(rng, cfg.Candidates, d.jobs)
	d.assessments = seedAssessments()
}

func seedJobs(rng *rand.Rand, n int) []job.Job {
	jobs := make([]job.Job, 0, n)
	for i := 1; i <= n; i++ {
		title := jobTitles[i%len(jobTitles)]
		status := job.StatusActive
		if i%3 == 0 {
			status = job.StatusArchived
		}
		minSalary := 90000 + (i%5)*5000
		maxSalary := 140000 + (i%5)*5000
		order := i

		var tags []string
		for _, t := range jobTags {
			if rng.Float64() < 0.35 {
				tags = append(tags, t)
			}
		}
		avatars := make([]string, 3)
		for k := range avatars {
			avatars[k] = fmt.Sprintf("https://i.pravatar.cc/150?img=%d", i+k)
		}

		jobs = append(jobs, job.Job{
			ID:               fmt.Sprintf("%d", i),
			Title:            title,
			Slug:             job.Slugify(fmt.Sprintf("%s-%d", title, i)),
			Status:           status,
			Department:       departments[i%len(departments)],
			Location:         jobLocations[i%len(jobLocations)],
			Candidates:       rng.Intn(8),
			CandidateAvatars: avatars,
			Description:      "We are looking for an experienced engineer to join the team and help build modern web applications.",
			Type:             jobTypes[i%len(jobTypes)],
			Level:            jobLevels[i%len(jobLevels)],
			MinSalary:        &minSalary,
			MaxSalary:        &maxSalary,
			Requirements: []string{
				"Solid JavaScript/TypeScript",
				"Experience with modern frameworks",
				"Understanding of testing and CI/CD",
			},
			Tags:  tags,
			Order: &order,
		})
	}
	return jobs
}

func seedCandidates(rng *rand.Rand, n int, jobs []job.Job) []candidate.Candidate {
	candidates := make([]candidate.Candidate, 0, n)
	for i := 1; i <= n; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		appliedAt := time.Now().AddDate(0, 0, -(5 + rng.Intn(896)))
		j := jobs[rng.Intn(len(jobs))]

		candidates = append(candidates, candidate.Candidate{
			ID:              fmt.Sprintf("%d", i),
			Name:            first + " " + last,
			Email:           fmt.Sprintf("%s.%s%d@email.com", job.Slugify(first), job.Slugify(last), i),
			Phone:           fmt.Sprintf("+1 (%d) %d-%04d", 200+rng.Intn(790), 200+rng.Intn(790), rng.Intn(10000)),
			Location:        cities[rng.Intn(len(cities))],
			Initials:        string(first[0]) + string(last[0]),
			Stage:           randomStage(rng),
			AppliedAt:       appliedAt.Format("Jan 2, 2006"),
			AppliedAtTS:     appliedAt.UnixMilli(),
			JobID:           j.ID,
			JobTitle:        j.Title,
			ExperienceYears: rng.Intn(13),
			Skills:          pickMany(rng, skillBank, 4, 8),
			ResumeURL:       "",
			Notes:           "",
		})
	}
	return candidates
}

// randomStage skews the distribution the way the original seed did: most
// candidates sit early in the pipeline.
func randomStage(rng *rand.Rand) candidate.Stage {
	r := rng.Float64()
	switch {
	case r < 0.25:
		return candidate.StageApplied
	case r < 0.45:
		return candidate.StageScreening
	case r < 0.70:
		return candidate.StageTechnical
	case r < 0.85:
		return candidate.StageOffer
	case r < 0.93:
		return candidate.StageHired
	default:
		return candidate.StageRejected
	}
}

func pickMany(rng *rand.Rand, bank []string, nMin, nMax int) []string {
	n := nMin + rng.Intn(nMax-nMin+1)
	pool := append([]string{}, bank...)
	out := make([]string, 0, n)
	for i := 0; i < n && len(pool) > 0; i++ {
		k := rng.Intn(len(pool))
		out = append(out, pool[k])
		pool = append(pool[:k], pool[k+1:]...)
	}
	return out
}

func mkMCQ(prompt string, options []string, correct int) assessment.Question {
	return assessment.Question{ID: uuid.NewString(), Type: assessment.QuestionMCQ, Prompt: prompt, Options: options, Correct: correct}
}

func mkNum(prompt string, min, max, correct float64) assessment.Question {
	return assessment.Question{ID: uuid.NewString(), Type: assessment.QuestionNumeric, Prompt: prompt, Min: &min, Max: &max, Correct: correct}
}

func mkText(prompt, correct string, maxLength int) assessment.Question {
	return assessment.Question{ID: uuid.NewString(), Type: assessment.QuestionText, Prompt: prompt, Correct: correct, MaxLength: &maxLength}
}

func seedAssessments() []assessment.Assessment {
	now := time.Now().UnixMilli()
	sets := []assessment.Assessment{
		{
			Title:       "Frontend Screening (React/JS) — Set A",
			JobTitle:    "Frontend Engineer",
			Description: "20-question quick screen covering React, JS, and browser basics.",
			Status:      assessment.StatusLive,
			Sections: []assessment.Section{
				{
					ID:    uuid.NewString(),
					Title: "React & State",
					Questions: []assessment.Question{
						mkMCQ("React state updates are:", []string{"Synchronous", "Always synchronous in StrictMode", "Asynchronous/batched", "Blocking"}, 2),
						mkMCQ("Best way to avoid prop-drilling:", []string{"Global var", "Context API", "Multiple setStates", "Inline CSS"}, 1),
						mkMCQ("Key prop helps React to:", []string{"Style elements", "Track identity across renders", "Bind events", "Improve CSS specificity"}, 1),
						mkMCQ("Controlled input means:", []string{"DOM owns value", "React state owns value", "Cannot be validated", "No onChange needed"}, 1),
						mkMCQ("useMemo is for:", []string{"Replacing all vars", "Avoid all re-renders", "Memoizing expensive calc", "Side-effects"}, 2),
						mkMCQ("Updates batched in React 18:", []string{"Only in events", "Many cases incl. async", "Never batched", "Only class comps"}, 1),
						mkMCQ("NOT a hook rule:", []string{"Top-level only", "Call conditionally", "Only in React funcs", "Custom hooks start with use"}, 1),
						mkMCQ("useEffect cleanup runs:", []string{"On mount", "Before next run & on unmount", "On setState", "On keypress"}, 1),
						mkText("Hook to keep a mutable value without re-renders:", "useRef", 40),
						mkText("Name the hook for memoizing callbacks.", "useCallback", 40),
					},
				},
				{
					ID:    uuid.NewString(),
					Title: "JavaScript & Browser",
					Questions: []assessment.Question{
						mkMCQ("Strict equality === checks:", []string{"Value only", "Type only", "Value & type", "Reference only"}, 2),
						mkMCQ("Which is NOT truthy?", []string{"[]", "{}", "0", "\"0\""}, 2),
						mkMCQ("let vs var:", []string{"Same scope", "let is block-scoped", "var is block-scoped", "var can't hoist"}, 1),
						mkMCQ("Promise.all rejects when:", []string{"Any rejects", "All resolve", "First resolves", "Timeout"}, 0),
						mkMCQ("Debounce does:", []string{"Group calls after wait", "Immediate run", "Retry failures", "Parallelize"}, 0),
						mkMCQ("Offline large structured store:", []string{"localStorage", "sessionStorage", "IndexedDB", "Cookies"}, 2),
						mkMCQ("CORS controls:", []string{"Styling", "Cross-origin HTTP access", "Animations", "SW scope"}, 1),
						mkNum("What status code indicates Created?", 100, 600, 201),
						mkText("Event loop queue for Promise callbacks (two words):", "microtask queue", 40),
						mkMCQ("CSS specificity (highest → lowest):", []string{"Inline > ID > Class > Element", "ID > Inline > Class > Element", "Class > ID > Inline > Element", "Inline > Class > ID > Element"}, 0),
					},
				},
			},
		},
		{
			Title:       "Data Structures & Algorithms — Set B",
			JobTitle:    "Software Engineer",
			Description: "20-question check on DS, complexity, and patterns.",
			Status:      assessment.StatusLive,
			Sections: []assessment.Section{
				{
					ID:    uuid.NewString(),
					Title: "Complexity & Arrays",
					Questions: []assessment.Question{
						mkMCQ("Binary search (average):", []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"}, 1),
						mkMCQ("Merge sort space:", []string{"O(1)", "O(log n)", "O(n)", "O(n^2)"}, 2),
						mkMCQ("Kadane's solves:", []string{"Longest subseq", "Min path sum", "Max subarray sum", "Edit distance"}, 2),
						mkMCQ("Two-pointer works best on:", []string{"Unordered arrays", "Graphs", "Sorted/semi-sorted data", "Trees"}, 2),
						mkMCQ("Stable sort:", []string{"Quick", "Heap", "Merge", "Selection"}, 2),
						mkMCQ("Hash map avg lookup:", []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"}, 0),
						mkMCQ("Sliding window is for:", []string{"DP tables", "Subarray constraints", "Graph traversal", "Backtracking"}, 1),
						mkMCQ("Binary heap extract-min:", []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"}, 1),
						mkText("Data structure used for BFS frontier:", "queue", 20),
						mkNum("Complete binary tree with 63 nodes has height (edges):", 0, 20, 5),
					},
				},
				{
					ID:    uuid.NewString(),
					Title: "Graphs, Trees & Strings",
					Questions: []assessment.Question{
						mkMCQ("Dijkstra requires:", []string{"No cycles", "Non-negative weights", "Directed only", "Negative cycles"}, 1),
						mkMCQ("Union-Find used for:", []string{"Topo sort", "SCC", "Connectivity/cycle detection", "Min cut"}, 2),
						mkMCQ("Trie best for:", []string{"Sorting numbers", "Prefix search", "Graph coloring", "Matrix expo"}, 1),
						mkMCQ("KMP improves:", []string{"Matrix mult", "String search via prefix function", "Sorting", "Compression"}, 1),
						mkMCQ("BST inorder yields:", []string{"Random", "Descending", "Ascending", "Level order"}, 2),
						mkMCQ("Topo sort applies to:", []string{"Cyclic graphs", "DAGs", "Trees only", "Complete graphs"}, 1),
						mkMCQ("Balanced BST height:", []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"}, 1),
						mkText("Algorithm for MST (three letters):", "kruskal", 20),
						mkNum("Edit distance between 'kitten' and 'sitting':", 0, 10, 3),
						mkMCQ("Manacher finds:", []string{"All anagrams", "Longest palindromic substring O(n)", "Max subarray", "Z-function"}, 1),
					},
				},
			},
		},
		{
			Title:       "Core CS & Web Basics — Set C",
			JobTitle:    "Generalist SWE",
			Description: "20 questions on OS, DB, Networking, HTTP, and web security.",
			Status:      assessment.StatusLive,
			Sections: []assessment.Section{
				{
					ID:    uuid.NewString(),
					Title: "OS & Databases",
					Questions: []assessment.Question{
						mkMCQ("Context switch happens when:", []string{"User clicks", "CPU switches proc/threads", "Disk spins", "GPU renders"}, 1),
						mkMCQ("Mutex ensures:", []string{"Non-blocking IO", "Mutual exclusion", "Fair scheduling", "No deadlocks"}, 1),
						mkMCQ("ACID: I =", []string{"Isolation", "Indexing", "Integrity", "Inversion"}, 0),
						mkMCQ("Normalization reduces:", []string{"Indexes", "Redundancy & anomalies", "Transactions", "Joins"}, 1),
						mkMCQ("Join returning rows with non-matches on right too:", []string{"INNER", "LEFT", "RIGHT", "FULL OUTER"}, 3),
						mkText("Two-letter acronym for Write-Ahead Logging:", "wal", 10),
						mkMCQ("Index for range queries:", []string{"Hash", "B+-Tree", "Bitmap only", "Heap"}, 1),
						mkNum("Page size 4KB equals how many bytes?", 1000, 10000, 4096),
						mkMCQ("Star schema common in:", []string{"OLTP", "OLAP / warehousing", "Transactions", "3NF"}, 1),
						mkMCQ("In MVCC, readers:", []string{"Block writers always", "See snapshot without blocking writers", "Must lock rows", "Use triggers"}, 1),
					},
				},
				{
					ID:    uuid.NewString(),
					Title: "Networking & Web Security",
					Questions: []assessment.Question{
						mkMCQ("TLS works at layer:", []string{"Link", "Network", "Transport/session boundary", "Application only"}, 2),
						mkMCQ("HTTP/2 adds:", []string{"UDP", "Multiplexed streams over one TCP", "No header compression", "Mandatory TLS"}, 1),
						mkMCQ("CSRF mitigated by:", []string{"SameSite & anti-CSRF tokens", "CSP img-src", "ETags", "ETL"}, 0),
						mkMCQ("CSP primarily defends against:", []string{"DDoS", "XSS", "CSRF", "SQLi"}, 1),
						mkMCQ("JWT should be:", []string{"Unsigned", "Kept secret & validated", "Only in localStorage", "Never rotated"}, 1),
						mkNum("Default HTTPS port:", 1, 65535, 443),
						mkMCQ("HSTS helps to:", []string{"Force HTTPS", "Cache images", "Compress JS", "Prevent CSRF"}, 0),
						mkText("Header that controlled framing (now CSP):", "x-frame-options", 40),
						mkMCQ("SameSite=Lax cookies:", []string{"Sent on all cross-site", "Not sent on top-level GET", "Sent on top-level GET but not most cross-site POSTs", "Never sent"}, 2),
						mkMCQ("HTTP 304 means:", []string{"Permanent redirect", "Not Modified", "Partial content", "Precondition failed"}, 1),
					},
				},
			},
		},
	}

	for i := range sets {
		sets[i].ID = uuid.NewString()
		sets[i].CreatedAt = now - int64(i+1)*1000
	}
	return sets
}
