package job

import "time"

// seedCatalog builds the static listings served by the API. Posted dates
// are anchored to process start so relative labels stay consistent.
func seedCatalog() []Job {
	now := time.Now()
	posted := func(d time.Duration) string {
		return now.Add(-d).Format(time.RFC3339)
	}

	return []Job{
		{
			ID:              "1",
			Title:           "Web Application Developer",
			Company:         "Backd Business Funding",
			Location:        "Austin, Texas Metropolitan Area",
			Type:            "full-time",
			WorkType:        "on-site",
			Salary:          &SalaryRange{Min: 65000, Max: 70000, Currency: "USD"},
			Description:     "We're looking for a web application developer to join our team. You'll work on building scalable web applications using modern technologies.",
			Requirements:    []string{"3+ years experience", "JavaScript", "React", "Node.js"},
			Tags:            []string{"Web Development", "JavaScript", "React"},
			PostedDate:      posted(1 * time.Hour),
			Featured:        false,
			MatchPercentage: 64,
			MatchBreakdown:  &MatchBreakdown{Education: 70, Skills: 60, WorkExp: 65, ExpLevel: 62},
			SkillsMatch:     "0 of 3 skills match",
			ExperienceLevel: "Mid Level",
			ApplicantCount:  25,
			TimePosted:      "1 hours ago",
			IsMatched:       true,
			FitExplanation:  "You have relevant experience in web development, though some specific skills may need development.",
		},
		{
			ID:              "2",
			Title:           "Software Engineer, Network Infrastructure",
			Company:         "Cursor AI",
			Location:        "Sunnyvale, CA",
			Type:            "full-time",
			WorkType:        "on-site",
			Salary:          &SalaryRange{Min: 161000, Max: 239000, Currency: "USD"},
			Description:     "Join our team to build network infrastructure systems. Experience with distributed systems, networking protocols, and cloud infrastructure required.",
			Requirements:    []string{"5+ years experience", "Network Infrastructure", "Distributed Systems", "Cloud"},
			Tags:            []string{"Network", "Infrastructure", "Cloud", "Distributed Systems"},
			PostedDate:      posted(2 * time.Hour),
			Featured:        true,
			MatchPercentage: 93,
			MatchBreakdown:  &MatchBreakdown{Education: 95, Skills: 92, WorkExp: 94, ExpLevel: 91},
			SkillsMatch:     "5+ years exp",
			ExperienceLevel: "Mid Level",
			ApplicantCount:  25,
			TimePosted:      "2 hours ago",
			IsMatched:       true,
			IsLiked:         true,
			FitExplanation:  "You have substantial experience in network infrastructure and distributed systems, making you an excellent fit for this role.",
		},
		{
			ID:              "3",
			Title:           "Full-Stack Software Engineer (Web Developer)",
			Company:         "Simons Foundation",
			Location:        "New York, NY",
			Type:            "full-time",
			WorkType:        "on-site",
			Salary:          &SalaryRange{Min: 125000, Max: 140000, Currency: "USD"},
			Description:     "Build full-stack web applications for scientific research platforms. Work with modern web technologies and contribute to open-source projects.",
			Requirements:    []string{"5+ years experience", "Full-Stack", "Web Development", "Python", "JavaScript"},
			Tags:            []string{"Full-Stack", "Web Development", "Python", "JavaScript"},
			PostedDate:      posted(24 * time.Hour),
			Featured:        true,
			MatchPercentage: 82,
			MatchBreakdown:  &MatchBreakdown{Education: 85, Skills: 80, WorkExp: 83, ExpLevel: 80},
			SkillsMatch:     "5+ years exp",
			ExperienceLevel: "Mid Level",
			ApplicantCount:  27,
			TimePosted:      "1 day ago",
			IsMatched:       true,
			IsLiked:         true,
			IsApplied:       true,
			FitExplanation:  "Your full-stack experience aligns well with the requirements, and your background in web development is highly relevant.",
		},
		{
			ID:              "4",
			Title:           "UX Designer",
			Company:         "Company name",
			Location:        "Ann Arbor, MI",
			Type:            "full-time",
			WorkType:        "remote",
			Salary:          &SalaryRange{Min: 90000, Max: 130000, Currency: "USD"},
			Description:     "Design user experiences for digital products. Work with cross-functional teams to create intuitive and engaging interfaces.",
			Requirements:    []string{"3+ years experience", "UX Design", "User Research", "Prototyping"},
			Tags:            []string{"UX", "Design", "User Research"},
			PostedDate:      posted(3 * 24 * time.Hour),
			Featured:        false,
			MatchPercentage: 93,
			MatchBreakdown:  &MatchBreakdown{Education: 93, Skills: 80, WorkExp: 44, ExpLevel: 85},
			SkillsMatch:     "5+ years exp",
			ExperienceLevel: "Mid Level",
			ApplicantCount:  15,
			TimePosted:      "3 days ago",
			IsMatched:       true,
			FitExplanation:  "You have substantial experience as a UI/UX Designer, Interaction Designer, and User Research Specialist. Your role at Sohu aligns with designing interaction elements relevant to user experience design for digital products.",
		},
		{
			ID:              "5",
			Title:           "Senior Full-Stack Engineer",
			Company:         "TechCorp",
			Location:        "San Francisco, CA",
			Type:            "full-time",
			WorkType:        "remote",
			Salary:          &SalaryRange{Min: 150000, Max: 200000, Currency: "USD"},
			Description:     "We're looking for a senior full-stack engineer to join our AI team. You'll work on cutting-edge products using Next.js, Python, and real-time systems.",
			Requirements:    []string{"5+ years experience", "Next.js", "Python", "FastAPI", "Real-time systems"},
			Tags:            []string{"AI", "Full-Stack", "Next.js", "Python", "Remote"},
			PostedDate:      posted(2 * 24 * time.Hour),
			Featured:        true,
			MatchPercentage: 88,
			MatchBreakdown:  &MatchBreakdown{Education: 90, Skills: 85, WorkExp: 88, ExpLevel: 89},
			SkillsMatch:     "5+ years exp",
			ExperienceLevel: "Senior",
			ApplicantCount:  42,
			TimePosted:      "2 days ago",
			IsMatched:       true,
			FitExplanation:  "Your extensive full-stack experience and expertise in modern web technologies make you an ideal candidate for this senior role.",
		},
		{
			ID:              "6",
			Title:           "AI Product Engineer",
			Company:         "InnovateAI",
			Location:        "New York, NY",
			Type:            "full-time",
			WorkType:        "hybrid",
			Salary:          &SalaryRange{Min: 140000, Max: 180000, Currency: "USD"},
			Description:     "Join our team to build AI-powered products that shape the future. Experience with AI/ML, real-time systems, and modern web technologies required.",
			Requirements:    []string{"3+ years experience", "AI/ML", "TypeScript", "React", "Node.js"},
			Tags:            []string{"AI", "Product", "TypeScript", "React", "Hybrid"},
			PostedDate:      posted(5 * 24 * time.Hour),
			Featured:        true,
			MatchPercentage: 75,
			MatchBreakdown:  &MatchBreakdown{Education: 78, Skills: 72, WorkExp: 75, ExpLevel: 75},
			SkillsMatch:     "3+ years exp",
			ExperienceLevel: "Mid Level",
			ApplicantCount:  38,
			TimePosted:      "5 days ago",
			IsMatched:       true,
			IsLiked:         true,
			FitExplanation:  "Your experience with AI/ML technologies and modern web development aligns well with this product engineering role.",
		},
		{
			ID:              "7",
			Title:           "Backend Developer - Real-Time Systems",
			Company:         "StreamTech",
			Location:        "Austin, TX",
			Type:            "full-time",
			WorkType:        "remote",
			Salary:          &SalaryRange{Min: 120000, Max: 160000, Currency: "USD"},
			Description:     "Build scalable real-time systems using FastAPI, WebSockets, and modern async patterns. Experience with LiveKit or similar platforms preferred.",
			Requirements:    []string{"4+ years experience", "Python", "FastAPI", "WebSockets", "Async programming"},
			Tags:            []string{"Backend", "Real-Time", "Python", "FastAPI", "Remote"},
			PostedDate:      posted(24 * time.Hour),
			Featured:        false,
			MatchPercentage: 79,
			MatchBreakdown:  &MatchBreakdown{Education: 82, Skills: 76, WorkExp: 80, ExpLevel: 78},
			SkillsMatch:     "4+ years exp",
			ExperienceLevel: "Mid Level",
			ApplicantCount:  22,
			TimePosted:      "1 day ago",
			IsMatched:       true,
			FitExplanation:  "Your backend development experience and knowledge of real-time systems make you a strong candidate for this position.",
		},
		{
			ID:              "8",
			Title:           "Frontend Engineer - Next.js",
			Company:         "WebFlow",
			Location:        "Seattle, WA",
			Type:            "full-time",
			WorkType:        "hybrid",
			Salary:          &SalaryRange{Min: 130000, Max: 170000, Currency: "USD"},
			Description:     "Create beautiful, responsive UIs with Next.js and Tailwind CSS. Experience with Framer Motion and real-time data visualization preferred.",
			Requirements:    []string{"3+ years experience", "Next.js", "TypeScript", "Tailwind CSS", "React"},
			Tags:            []string{"Frontend", "Next.js", "TypeScript", "UI/UX", "Hybrid"},
			PostedDate:      posted(3 * 24 * time.Hour),
			Featured:        false,
			MatchPercentage: 85,
			MatchBreakdown:  &MatchBreakdown{Education: 87, Skills: 83, WorkExp: 85, ExpLevel: 85},
			SkillsMatch:     "3+ years exp",
			ExperienceLevel: "Mid Level",
			ApplicantCount:  31,
			TimePosted:      "3 days ago",
			IsMatched:       true,
			FitExplanation:  "Your frontend expertise with Next.js and modern React development aligns perfectly with our requirements.",
		},
	}
}
