package service

import (
	"blogapi/internal/lifecycle"
	"blogapi/internal/model"
)

var starterPosts = []model.PostInput{
	{
		Title:    "How to Spot Bank Fraud and Protect Your Money",
		Category: "Product Updates",
		Excerpt:  "Learn essential tips to identify and prevent bank fraud to keep your money safe.",
		Content:  "Bank fraud is a serious threat that affects millions of people worldwide. In this guide we look at the most common types of bank fraud and the steps that keep you and your finances safe.",
		Image:    "https://images.unsplash.com/photo-1563013544-824ae1b704d3?w=800&h=600&fit=crop",
		Status:   lifecycle.Published,
	},
	{
		Title:    "Needs vs Wants: The Smart Way to Manage Money and Save",
		Category: "Business Life",
		Excerpt:  "Learn the difference between needs and wants to make smarter financial decisions.",
		Content:  "Understanding the difference between needs and wants is fundamental to building a solid financial foundation. Sort your expenses and spend with intent.",
		Image:    "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?w=800&h=600&fit=crop",
		Status:   lifecycle.Published,
	},
	{
		Title:    "Top Fintech Companies Leading Innovation",
		Category: "News",
		Excerpt:  "Discover the companies revolutionizing financial technology this year.",
		Content:  "The fintech industry keeps moving quickly, with new companies changing how we handle money, make payments and reach financial services.",
		Image:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=600&fit=crop",
		Status:   lifecycle.Published,
	},
	{
		Title:    "How to Save Smarter and Earn Up to 18% Interest",
		Category: "Business Tips",
		Excerpt:  "Maximize your savings with these proven strategies and high-yield accounts.",
		Content:  "Saving money is just the beginning. High-yield accounts and a few habits make your savings work harder.",
		Image:    "https://images.unsplash.com/photo-1579621970588-a35d0e7ab9b6?w=800&h=600&fit=crop",
		Status:   lifecycle.Published,
	},
	{
		Title:    "Digital Payment Trends Reshaping Commerce",
		Category: "Tech & Processes",
		Excerpt:  "Explore how digital payments are transforming the way we do business.",
		Content:  "Digital payments make transactions faster and more convenient for businesses and customers alike.",
		Image:    "https://images.unsplash.com/photo-1563013544-824ae1b704d3?w=800&h=600&fit=crop",
		Status:   lifecycle.Published,
	},
	{
		Title:    "Essential Tips for Small Business Financial Success",
		Category: "Business Tips",
		Excerpt:  "Build a solid financial foundation for your small business with expert advice.",
		Content:  "Running a small business takes careful financial planning. These are the basics every owner should know.",
		Image:    "https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=800&h=600&fit=crop",
		Status:   lifecycle.Published,
	},
	{
		Title:    "The Future of Banking: What to Expect",
		Category: "Impact Stories",
		Excerpt:  "A look at emerging technologies shaping the future of financial services.",
		Content:  "Banking is changing under pressure from technology, customer expectations and new regulation.",
		Image:    "https://images.unsplash.com/photo-1501167786227-4cba60f6d58f?w=800&h=600&fit=crop",
		Status:   lifecycle.Published,
	},
	{
		Title:    "Understanding Cryptocurrency for Business",
		Category: "Tech & Processes",
		Excerpt:  "A beginner's guide to cryptocurrency and its potential impact on business.",
		Content:  "Many businesses are looking at how digital currencies could fit their operations and customer experience.",
		Image:    "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?w=800&h=600&fit=crop",
		Status:   lifecycle.Draft,
	},
}
