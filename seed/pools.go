package seed

type department struct {
	name     string
	location string
	budget   int
}

var departments = []department{
	{"Engineering", "San Francisco", 2500000},
	{"Sales", "New York", 1800000},
	{"Marketing", "Los Angeles", 1200000},
	{"Human Resources", "Chicago", 800000},
	{"Finance", "Boston", 1500000},
	{"Operations", "Seattle", 1100000},
	{"Customer Support", "Austin", 900000},
	{"Research", "San Francisco", 2000000},
}

var jobTitles = map[string][]string{
	"Engineering": {"Software Engineer", "Senior Software Engineer", "Staff Engineer",
		"DevOps Engineer", "QA Engineer", "Engineering Manager"},
	"Sales": {"Sales Representative", "Senior Sales Rep", "Account Executive",
		"Sales Manager", "Sales Director"},
	"Marketing": {"Marketing Coordinator", "Content Strategist", "Brand Manager",
		"Marketing Manager", "Marketing Director"},
	"Human Resources": {"HR Coordinator", "Recruiter", "HR Business Partner",
		"HR Manager", "HR Director"},
	"Finance": {"Financial Analyst", "Senior Accountant", "Finance Manager",
		"Controller"},
	"Operations": {"Operations Coordinator", "Supply Chain Analyst",
		"Logistics Manager", "Operations Manager"},
	"Customer Support": {"Support Representative", "Support Specialist",
		"Customer Success Manager", "Support Manager"},
	"Research": {"Research Scientist", "Data Scientist", "ML Engineer",
		"Senior Researcher", "Research Director"},
}

type salaryRange struct {
	keyword string
	low     int
	high    int
}

// Ordered so more specific keywords win before generic ones.
var salaryRanges = []salaryRange{
	{"Director", 150000, 220000},
	{"Staff", 140000, 200000},
	{"Senior", 100000, 160000},
	{"Manager", 90000, 150000},
	{"Scientist", 90000, 160000},
	{"Engineer", 80000, 140000},
	{"Analyst", 60000, 90000},
	{"Specialist", 55000, 85000},
	{"Representative", 50000, 75000},
	{"Coordinator", 45000, 65000},
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Carlos", "Karen", "Daniel",
	"Lisa", "Matthew", "Nancy", "Anthony", "Betty", "Mark", "Margaret",
	"Amir", "Sandra", "Steven", "Ashley", "Paul", "Kimberly", "Andrew",
	"Emily", "Joshua", "Donna", "Kenneth", "Michelle", "Kevin", "Dorothy",
	"Brian", "Carol", "Wei", "Amanda", "Ronald", "Melissa", "Timothy", "Deborah",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	"Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
}

var projectNames = []string{
	"Website Redesign", "Mobile App Launch", "Data Migration",
	"CRM Integration", "Security Audit", "Cloud Migration",
	"API Development", "Analytics Dashboard", "Inventory System",
	"Customer Portal", "Payment Gateway", "Search Optimization",
	"Performance Tuning", "Documentation Update", "Training Program",
	"Market Research", "Brand Refresh", "Product Launch Q1",
	"Product Launch Q2", "Infrastructure Upgrade", "DevOps Pipeline",
	"Testing Framework", "Compliance Review", "Budget Planning",
	"Annual Report",
}

var salaryChangeReasons = []string{
	"Annual raise", "Promotion", "Market adjustment",
	"Performance bonus", "Role change",
}

var projectRoles = []string{
	"Lead", "Contributor", "Reviewer", "Advisor",
}

var reviewComments = []string{
	"Consistently exceeds expectations.",
	"Meets expectations, room to grow.",
	"Strong collaborator across teams.",
	"Needs improvement on delivery timelines.",
	"Outstanding technical contributions.",
	"Great mentor to junior staff.",
}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "Austin",
	"Seattle", "Denver", "Boston", "Portland", "Atlanta",
}

var customerTiers = []string{"bronze", "bronze", "silver", "silver", "gold", "platinum"}

type category struct {
	id     int
	name   string
	parent int
}

var productCategories = []category{
	{1, "Electronics", 0},
	{2, "Computers", 1},
	{3, "Audio", 1},
	{4, "Home & Kitchen", 0},
	{5, "Appliances", 4},
	{6, "Furniture", 4},
	{7, "Sports & Outdoors", 0},
	{8, "Fitness", 7},
	{9, "Camping", 7},
	{10, "Books", 0},
}

var productAdjectives = []string{
	"Classic", "Premium", "Compact", "Wireless", "Portable", "Smart",
	"Ergonomic", "Deluxe", "Essential", "Pro",
}

var productNouns = []string{
	"Laptop Stand", "Headphones", "Keyboard", "Monitor", "Blender",
	"Coffee Maker", "Desk Lamp", "Office Chair", "Yoga Mat", "Dumbbell Set",
	"Tent", "Sleeping Bag", "Notebook", "Water Bottle", "Backpack",
	"Speaker", "Mouse", "Webcam", "Toaster", "Bookshelf",
}

var orderStatuses = []string{
	"pending", "shipped", "shipped", "delivered", "delivered", "delivered", "cancelled",
}

var streetNames = []string{
	"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Pine St",
	"Elm St", "Washington Blvd", "Lake View Rd", "Sunset Ave", "Park Pl",
}

type promotion struct {
	code        string
	description string
	kind        string
	value       float64
}

var promotions = []promotion{
	{"WELCOME10", "New customer discount", "percentage", 10},
	{"SAVE20", "20% off everything", "percentage", 20},
	{"FLAT15", "$15 off orders over $100", "fixed_amount", 15},
	{"FREESHIP", "Free shipping", "free_shipping", 0},
	{"SUMMER25", "Summer sale", "percentage", 25},
	{"HOLIDAY30", "Holiday special", "percentage", 30},
	{"VIP50", "VIP exclusive", "fixed_amount", 50},
	{"FLASH10", "Flash sale", "percentage", 10},
}

var pages = []string{
	"/", "/products", "/products/category/electronics", "/products/category/clothing",
	"/products/123", "/products/456", "/products/789",
	"/cart", "/checkout", "/checkout/success",
	"/account", "/account/orders", "/account/settings",
	"/about", "/contact", "/blog", "/blog/post-1", "/blog/post-2",
	"/search", "/deals", "/new-arrivals",
}

type eventType struct {
	name     string
	category string
}

var eventTypes = []eventType{
	{"page_view", "engagement"},
	{"add_to_cart", "conversion"},
	{"remove_from_cart", "conversion"},
	{"begin_checkout", "conversion"},
	{"purchase", "conversion"},
	{"sign_up", "conversion"},
	{"login", "engagement"},
	{"search", "engagement"},
	{"product_view", "engagement"},
	{"share", "engagement"},
	{"newsletter_signup", "conversion"},
}

type referrer struct {
	source string
	medium string
}

var referrers = []referrer{
	{"google", "organic"},
	{"google", "cpc"},
	{"facebook", "social"},
	{"instagram", "social"},
	{"twitter", "social"},
	{"direct", "none"},
	{"email", "email"},
	{"affiliate", "referral"},
}

var browsers = []string{"Chrome", "Safari", "Firefox", "Edge"}

var operatingSystems = []string{"Windows", "macOS", "iOS", "Android", "Linux"}

var deviceTypes = []string{"desktop", "desktop", "mobile", "mobile", "tablet"}

var signupSources = []string{"organic", "paid", "referral", "social", "direct"}

var userCountries = []string{
	"USA", "USA", "USA", "USA", "UK", "UK", "Canada",
	"Germany", "France", "Australia", "Japan", "Brazil",
}

var conversionTypes = []string{"purchase", "signup", "subscription", "lead"}

var attributionChannels = []string{
	"organic", "paid_search", "social", "email", "direct", "referral",
}

type abTest struct {
	name   string
	status string
}

var abTests = []abTest{
	{"Homepage Hero Test", "completed"},
	{"Checkout Button Color", "running"},
	{"Product Page Layout", "completed"},
	{"Pricing Display", "running"},
	{"Navigation Menu", "completed"},
}

var abVariants = []string{"control", "variant_a", "variant_b"}

var metricNames = []string{
	"daily_active_users", "page_views", "sessions", "conversions",
	"revenue", "bounce_rate", "avg_session_duration", "new_users",
}

var metricSegments = []string{"all", "mobile", "desktop", "organic", "paid"}

var reviewTexts = []string{
	"Exactly what I needed.",
	"Good value for the price.",
	"Quality could be better.",
	"Arrived quickly, works great.",
	"Would not recommend.",
	"Five stars, excellent product.",
	"Decent, but packaging was damaged.",
}
