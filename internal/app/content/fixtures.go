/*
Package content holds the platform's read-only catalog and the small amount of
visitor-generated community state.

This file contains the fixture data itself.
*/
package content

var quotes = []Quote{
	{ID: 1, Text: "You are stronger than you think, braver than you feel, and more loved than you know.", Author: "Mental Health Awareness"},
	{ID: 2, Text: "It's okay to not be okay. It's not okay to stay that way.", Author: "Recovery Wisdom"},
	{ID: 3, Text: "Healing is not about erasing your past, but learning to live with it.", Author: "Therapy Insights"},
	{ID: 4, Text: "Your mental health is just as important as your physical health.", Author: "Wellness Reminder"},
	{ID: 5, Text: "Progress, not perfection. Every small step counts.", Author: "Self-Compassion"},
}

var resourceCategories = []ResourceCategory{
	{
		ID:          "anxiety",
		Name:        "Anxiety Management",
		Description: "Learn techniques to manage anxiety and stress",
		Icon:        "🧘",
		Color:       "calm",
		Resources: []Resource{
			{ID: 1, Title: "Breathing Exercises for Anxiety", Type: "video", Duration: "10 mins", Description: "Simple breathing techniques to calm your mind", Thumbnail: "/placeholder-video.jpg", URL: "#"},
			{ID: 2, Title: "Understanding Anxiety Triggers", Type: "guide", Duration: "Read: 5 mins", Description: "Identify and manage your anxiety triggers", Thumbnail: "/placeholder-guide.jpg", URL: "#"},
		},
	},
	{
		ID:          "depression",
		Name:        "Depression Support",
		Description: "Resources for understanding and managing depression",
		Icon:        "🌱",
		Color:       "trust",
		Resources: []Resource{
			{ID: 3, Title: "Building Daily Routines", Type: "guide", Duration: "Read: 8 mins", Description: "Create structure to support your mental health", Thumbnail: "/placeholder-guide.jpg", URL: "#"},
			{ID: 4, Title: "Mindfulness for Depression", Type: "audio", Duration: "15 mins", Description: "Guided meditation for depressive episodes", Thumbnail: "/placeholder-audio.jpg", URL: "#"},
		},
	},
	{
		ID:          "stress",
		Name:        "Stress Management",
		Description: "Effective strategies for academic and life stress",
		Icon:        "⚡",
		Color:       "hope",
		Resources: []Resource{
			{ID: 5, Title: "Time Management for Students", Type: "video", Duration: "12 mins", Description: "Balance studies and self-care effectively", Thumbnail: "/placeholder-video.jpg", URL: "#"},
			{ID: 6, Title: "Quick Stress Relief Techniques", Type: "guide", Duration: "Read: 3 mins", Description: "5-minute techniques you can use anywhere", Thumbnail: "/placeholder-guide.jpg", URL: "#"},
		},
	},
}

var counselors = []Counselor{
	{
		ID:             1,
		Name:           "Dr. Sarah Johnson",
		Specialization: "Anxiety & Depression",
		Experience:     "8 years",
		Avatar:         "/placeholder-counselor.jpg",
		Rating:         4.9,
		Availability: map[string][]string{
			"2024-01-15": {"10:00", "14:00", "16:00"},
			"2024-01-16": {"09:00", "11:00", "15:00"},
			"2024-01-17": {"10:00", "13:00", "17:00"},
		},
		Bio: "Specialized in helping college students navigate anxiety and depression.",
	},
	{
		ID:             2,
		Name:           "Dr. Michael Chen",
		Specialization: "Academic Stress",
		Experience:     "12 years",
		Avatar:         "/placeholder-counselor.jpg",
		Rating:         4.8,
		Availability: map[string][]string{
			"2024-01-15": {"11:00", "15:00"},
			"2024-01-16": {"10:00", "14:00", "16:00"},
			"2024-01-17": {"09:00", "12:00", "15:00"},
		},
		Bio: "Expert in academic pressure and performance anxiety management.",
	},
	{
		ID:             3,
		Name:           "Dr. Priya Sharma",
		Specialization: "Relationship & Social Issues",
		Experience:     "6 years",
		Avatar:         "/placeholder-counselor.jpg",
		Rating:         4.9,
		Availability: map[string][]string{
			"2024-01-15": {"09:00", "13:00", "17:00"},
			"2024-01-16": {"12:00", "15:00"},
			"2024-01-17": {"10:00", "14:00", "16:00"},
		},
		Bio: "Focuses on social anxiety and relationship challenges in college.",
	},
}

var seedForumPosts = []ForumPost{
	{
		ID:       1,
		Title:    "How do you deal with exam anxiety?",
		Content:  "I get really stressed before exams and my mind goes blank. Any tips?",
		Author:   "Anonymous Student",
		Posted:   "2 hours ago",
		Replies:  8,
		Upvotes:  12,
		Tags:     []string{"anxiety", "exams", "study-tips"},
		Category: "Academic Stress",
	},
	{
		ID:       2,
		Title:    "Feeling isolated in college",
		Content:  "Its hard to make friends and I feel really lonely. How do others cope?",
		Author:   "Anonymous Student",
		Posted:   "5 hours ago",
		Replies:  15,
		Upvotes:  23,
		Tags:     []string{"loneliness", "social", "friendship"},
		Category: "Social Issues",
	},
	{
		ID:       3,
		Title:    "Sleep schedule completely messed up",
		Content:  "I cant seem to fix my sleep pattern. Staying up all night, tired all day.",
		Author:   "Anonymous Student",
		Posted:   "1 day ago",
		Replies:  6,
		Upvotes:  18,
		Tags:     []string{"sleep", "health", "routine"},
		Category: "Wellness",
	},
}

var aiResponses = AIResponses{
	Greeting: "Hello! I'm here to provide you with mental health support and guidance. How are you feeling today?",
	Anxiety: SeverityResponses{
		Mild:     "I understand you're feeling anxious. Let's try a simple breathing exercise: Breathe in for 4 counts, hold for 4, breathe out for 6. Would you like me to guide you through this?",
		Moderate: "Your anxiety seems significant. Here are some immediate coping strategies: 1) Ground yourself using the 5-4-3-2-1 technique, 2) Practice deep breathing, 3) Challenge negative thoughts. Would you like to explore any of these?",
		Severe:   "I'm concerned about your current state. While I can offer some immediate support, I strongly recommend booking a session with one of our counselors. In the meantime, please remember that you're not alone. Would you like me to help you book an appointment?",
	},
	Depression: SeverityResponses{
		Mild:     "I hear that you're going through a difficult time. It's brave of you to reach out. Some gentle activities that might help: taking a short walk, listening to music, or calling a friend. What feels manageable for you right now?",
		Moderate: "Your feelings are valid and you deserve support. Consider: 1) Maintaining a daily routine, 2) Engaging in one small pleasant activity, 3) Connecting with someone you trust. Would you like to talk about any of these?",
		Severe:   "I'm very concerned about how you're feeling. Please know that these feelings can improve with proper support. I strongly encourage you to speak with a counselor immediately. Would you like me to help you book an urgent appointment?",
	},
	Stress: StressResponses{
		Academic: "Academic stress is common among students. Let's break this down: 1) What specific academic challenges are you facing? 2) Have you tried time management techniques? 3) Are you taking care of your basic needs (sleep, food, exercise)?",
		General:  "Stress can feel overwhelming, but there are ways to manage it. Quick stress relief: 1) Take 5 deep breaths, 2) Do a quick body scan for tension, 3) List 3 things you're grateful for. Which resonates with you?",
	},
	Crisis: "I'm very concerned about what you've shared. Please know that you matter and help is available. If you're having thoughts of self-harm, please contact emergency services immediately or reach out to a crisis helpline. Would you like me to provide crisis resources?",
}

var moodOptions = []MoodOption{
	{Value: 1, Label: "Very Low", Emoji: "😢", Color: "destructive"},
	{Value: 2, Label: "Low", Emoji: "😔", Color: "warning"},
	{Value: 3, Label: "Neutral", Emoji: "😐", Color: "muted"},
	{Value: 4, Label: "Good", Emoji: "😊", Color: "calm"},
	{Value: 5, Label: "Excellent", Emoji: "😁", Color: "success"},
}

var analytics = Analytics{
	UserStats: UserStats{
		TotalUsers:  1247,
		ActiveUsers: 892,
		NewSignups:  156,
		GuestUsers:  234,
	},
	StressLevels: []StressLevel{
		{Department: "Engineering", Level: 7.2, Trend: "up"},
		{Department: "Medicine", Level: 8.1, Trend: "up"},
		{Department: "Arts", Level: 5.8, Trend: "down"},
		{Department: "Commerce", Level: 6.5, Trend: "stable"},
		{Department: "Science", Level: 7.0, Trend: "up"},
	},
	MonthlyData: []MonthlyDatum{
		{Month: "Jan", Users: 450, Sessions: 1200, Resources: 890},
		{Month: "Feb", Users: 520, Sessions: 1450, Resources: 1020},
		{Month: "Mar", Users: 680, Sessions: 1800, Resources: 1350},
		{Month: "Apr", Users: 750, Sessions: 2100, Resources: 1580},
		{Month: "May", Users: 892, Sessions: 2450, Resources: 1820},
	},
	Alerts: []Alert{
		{ID: 1, Type: "high-stress", Department: "Engineering", Severity: "high", Message: "Stress levels in Engineering department are 25% above average", Posted: "2 hours ago"},
		{ID: 2, Type: "crisis", Severity: "critical", Message: "3 crisis intervention cases reported today", Posted: "4 hours ago"},
		{ID: 3, Type: "engagement", Severity: "medium", Message: "Forum activity decreased by 15% this week", Posted: "1 day ago"},
	},
}
