package catalog

const placeholderImage = "/placeholder.png?height=300&width=400"

// Default returns the built-in project catalog.
func Default() *Catalog {
	return MustNew(
		Project{
			ID:          "project1",
			Title:       "AI-Powered Analytics",
			Image:       placeholderImage,
			Description: "A comprehensive analytics platform leveraging machine learning algorithms to provide actionable insights from complex datasets. This solution transforms raw data into strategic business intelligence through intuitive visualizations and automated reporting systems.",
			DemoURL:     "https://example.com/demo1",
			SourceURL:   "https://github.com/bharath/project1",
		},
		Project{
			ID:          "project2",
			Title:       "Immersive VR Experience",
			Image:       placeholderImage,
			Description: "An innovative virtual reality application designed to create immersive educational experiences. This project combines cutting-edge VR technology with interactive storytelling to revolutionize how users engage with educational content across various disciplines.",
			DemoURL:     "https://example.com/demo2",
			SourceURL:   "https://github.com/bharath/project2",
		},
		Project{
			ID:          "project3",
			Title:       "Sustainable IoT Solution",
			Image:       placeholderImage,
			Description: "An environmentally conscious Internet of Things platform that optimizes energy consumption in smart buildings. This system utilizes a network of sensors and intelligent algorithms to reduce carbon footprint while maintaining optimal comfort levels for occupants.",
			DemoURL:     "https://example.com/demo3",
			SourceURL:   "https://github.com/bharath/project3",
		},
		Project{
			ID:          "project4",
			Title:       "Blockchain Marketplace",
			Image:       placeholderImage,
			Description: "A decentralized marketplace built on blockchain technology that enables secure, transparent transactions without intermediaries. This platform incorporates smart contracts to automate agreement enforcement and provides a trustless environment for digital commerce.",
			DemoURL:     "https://example.com/demo4",
			SourceURL:   "https://github.com/bharath/project4",
		},
		Project{
			ID:          "project5",
			Title:       "Neural Art Generator",
			Image:       placeholderImage,
			Description: "A creative tool that leverages neural networks to transform ordinary images into artistic masterpieces. This application employs style transfer algorithms to apply the characteristics of famous art styles to user-uploaded photos, creating unique visual compositions.",
			DemoURL:     "https://example.com/demo5",
			SourceURL:   "https://github.com/bharath/project5",
		},
		Project{
			ID:          "project6",
			Title:       "Quantum Computing Simulator",
			Image:       placeholderImage,
			Description: "An educational platform that simulates quantum computing principles for researchers and students. This simulator visualizes quantum circuits and algorithms, providing an accessible entry point to quantum computing concepts without requiring specialized hardware.",
			DemoURL:     "https://example.com/demo6",
			SourceURL:   "https://github.com/bharath/project6",
		},
		Project{
			ID:          "project7",
			Title:       "Augmented Reality Navigation",
			Image:       placeholderImage,
			Description: "A mobile application that overlays directional guidance on real-world environments using augmented reality. This solution enhances navigation experiences by providing contextual information about surroundings and points of interest through an intuitive visual interface.",
			DemoURL:     "https://example.com/demo7",
			SourceURL:   "https://github.com/bharath/project7",
		},
		Project{
			ID:          "project8",
			Title:       "Biometric Security System",
			Image:       placeholderImage,
			Description: "A multi-factor authentication system that combines various biometric identifiers for enhanced security. This solution integrates facial recognition, fingerprint scanning, and voice pattern analysis to create a robust, user-friendly security framework for sensitive applications.",
			DemoURL:     "https://example.com/demo8",
			SourceURL:   "https://github.com/bharath/project8",
		},
		Project{
			ID:          "project9",
			Title:       "Autonomous Drone Platform",
			Image:       placeholderImage,
			Description: "A software platform for programming and controlling autonomous drone operations in various industries. This system enables complex flight patterns, obstacle avoidance, and automated data collection through an intuitive interface accessible to both technical and non-technical users.",
			DemoURL:     "https://example.com/demo9",
			SourceURL:   "https://github.com/bharath/project9",
		},
	)
}
