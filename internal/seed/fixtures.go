package seed

import "github.com/Skotchmaster/storefront/internal/repo"

// Fixtures is the catalog every fresh store starts with. Prices are in cents.
func Fixtures() []repo.NewService {
	return []repo.NewService{
		{
			Title:       "Advanced Precision Aimbot",
			Description: "Next-generation neck targeting system with AI-powered precision tracking for instant eliminations. Features advanced prediction algorithms and customizable targeting zones.",
			Price:       1499,
			ImageURL:    "/assets/file_00000000cbf06230882a04d9be45430c_1755072745113.png",
			Category:    "Aimbot",
			Features:    []string{"AI-Powered Targeting", "Neck & Head Precision", "Prediction Algorithms", "Undetectable Anti-Cheat", "Customizable Settings", "Instant Activation"},
			Badge:       "Premium",
		},
		{
			Title:       "Professional Drag System",
			Description: "Professional-grade drag-and-shoot system designed for competitive gameplay. Delivers consistent accuracy with natural mouse movement patterns.",
			Price:       1299,
			ImageURL:    "/assets/file_000000001dc861fb965e40358456c004_1755072762575.png",
			Category:    "Aimbot",
			Features:    []string{"Natural Movement Patterns", "Drag System Technology", "Perfect Accuracy", "Quick Scope Support", "Anti-Detection Shield", "Pro Player Settings"},
			Badge:       "Popular",
		},
		{
			Title:       "Smart Auto-Convert",
			Description: "Intelligent body-to-headshot conversion system that automatically optimizes your shots for maximum damage output with seamless integration.",
			Price:       999,
			ImageURL:    "/assets/file_00000000bd48620ab92f92738d193ece_1755072776227.png",
			Category:    "Aimbot",
			Features:    []string{"Smart Conversion", "Damage Optimization", "Body to Head Auto", "Silent Operation", "Instant Results", "Smart Detection Bypass"},
			Badge:       "Hot",
		},
		{
			Title:       "Elite ESP System",
			Description: "Advanced holographic enemy detection system with wall penetration technology. See through any surface with detailed enemy information display.",
			Price:       1000,
			ImageURL:    "/assets/file_0000000062b861f8bbf45c64187797e6_1755072788109.png",
			Category:    "ESP",
			Features:    []string{"Holographic Display", "Wall Penetration", "Enemy Health Info", "Distance Calculator", "Weapon Detection", "Team Recognition"},
			Badge:       "ESP",
		},
		{
			Title:       "Ultimate iOS Mod Suite",
			Description: "Complete mobile gaming modification suite for iOS devices. Includes all premium features with an intuitive interface and cloud synchronization.",
			Price:       1999,
			ImageURL:    "/assets/file_000000008f70622f870a6bceff3f87a3_1755072798725.png",
			Category:    "Mobile",
			Features:    []string{"All Premium Features", "iOS Optimization", "Cloud Sync", "Custom Interface", "Regular Updates", "Multi-Game Support"},
			Badge:       "VIP",
		},
		{
			Title:       "VIP Elite Membership",
			Description: "Exclusive access to our premium community with advanced features, priority support, early access to new releases, and VIP-only content.",
			Price:       2499,
			ImageURL:    "/assets/file_00000000db8061f8b25f402042c93720_1755143389974.png",
			Category:    "Premium",
			Features:    []string{"VIP Community Access", "Priority Support", "Early Access Features", "Exclusive Content", "Personal Account Manager", "Lifetime Updates"},
			Badge:       "VIP",
		},
		{
			Title:       "Velocity Optimizer",
			Description: "Advanced movement and speed optimization system that enhances player mobility without triggering anti-cheat systems.",
			Price:       899,
			ImageURL:    "/assets/file_00000000cbf06230882a04d9be45430c_1755072745113.png",
			Category:    "Enhancement",
			Features:    []string{"Speed Optimization", "Movement Enhancement", "Jump Boost", "Slide Improvement", "Natural Physics", "Anti-Detection"},
			Badge:       "New",
		},
		{
			Title:       "Tactical Radar Pro",
			Description: "Professional-grade minimap enhancement with real-time enemy positioning, movement prediction, and tactical overlay systems.",
			Price:       1199,
			ImageURL:    "/assets/file_000000001dc861fb965e40358456c004_1755072762575.png",
			Category:    "ESP",
			Features:    []string{"Real-time Radar", "Movement Prediction", "Tactical Overlay", "Custom Markers", "Range Finder", "Team Coordination"},
			Badge:       "Premium",
		},
	}
}
