// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package chatbot

// DefaultTable is the site assistant's keyword table. Entries are checked
// top to bottom, so short keywords such as "hi" shadow longer phrases that
// contain them.
var DefaultTable = []Entry{
	// Greetings
	{"hello", "Hello there! How can I assist you today?"},
	{"hi", "Hi! Welcome to AI-Solution. What would you like to know?"},
	{"hey", "Hello! How can I help you learn more about AI-Solution?"},
	{"good morning", "Good morning! How can I support you today?"},
	{"good afternoon", "Good afternoon! What can I do for you?"},
	{"good evening", "Good evening! How can I assist with your AI queries today?"},
	{"how are you", "I'm doing well, thank you for asking. How can I assist you today?"},
	{"can you help me", "Of course. Please tell me what kind of information you are looking for."},

	// Company
	{"what is ai-solution", "AI-Solution is a technology company specializing in developing AI-powered platforms for healthcare, finance, and education."},
	{"tell me about ai-solution", "AI-Solution focuses on building intelligent systems that improve automation, analytics, and decision-making using artificial intelligence."},
	{"what does ai-solution do", "We create AI-driven solutions that help businesses analyze data, automate operations, and improve performance."},
	{"when was ai-solution founded", "AI-Solution was conceptualized as a modern AI development platform focused on integrating machine learning into business applications."},
	{"where is ai-solution located", "AI-Solution is based in Nepal and collaborates with international partners on AI and data science projects."},
	{"what is your mission", "Our mission is to make artificial intelligence accessible, transparent, and beneficial for all industries."},
	{"what is your vision", "Our vision is to empower organizations through innovative, data-driven, and ethical AI solutions."},
	{"what are your core values", "Our core values include innovation, transparency, teamwork, integrity, and user-centric design."},
	{"what makes ai-solution unique", "AI-Solution stands out for its blend of practical implementation, academic rigor, and focus on real-world AI deployment."},

	// Services
	{"what services do you offer", "We offer AI-based services for Healthcare, Finance, and Education, focusing on data analytics, automation, and predictive modeling."},
	{"can you tell me about your healthcare services", "In healthcare, we develop diagnostic tools, patient management systems, and disease prediction models using deep learning."},
	{"what do you offer in finance", "Our finance AI solutions include fraud detection, algorithmic trading, customer risk analysis, and financial forecasting."},
	{"what are your education services", "We create AI-powered platforms for personalized learning, student performance tracking, and automated evaluation systems."},
	{"which industries do you work with", "We work across healthcare, finance, education, and enterprise digital transformation sectors."},
	{"do you provide custom ai solutions", "Yes, we design custom AI systems tailored to client needs and integrate them with existing infrastructures."},
	{"do you provide consulting services", "Yes, we offer AI strategy consulting, technical advisory, and implementation support."},

	// Projects and products
	{"can you tell me about your projects", "Our projects include predictive analytics tools, healthcare diagnostic systems, and automated learning platforms."},
	{"what projects have you completed", "We have completed projects involving medical image classification, financial risk modeling, and academic data analytics."},
	{"what are your main products", "Our main products include AI-powered data dashboards, smart prediction engines, and process automation modules."},
	{"do you publish research papers", "Yes, we regularly publish research and technical documentation related to AI development and ethical data use."},
	{"do you have case studies", "Yes, we maintain a portfolio of case studies highlighting real-world AI implementations for different clients."},

	// Contact and support
	{"how can i contact you", "You can contact us through the website contact form or email us at info@ai-solution.com."},
	{"how do i reach your team", "Please reach out through the contact section of our website. Our team will respond promptly."},
	{"how do i get technical support", "For technical assistance, use the support form on our website to submit your issue."},
	{"how can i give feedback", "We welcome your feedback. Please share it through our website feedback section."},
	{"how can i report a bug", "You can report any issue by contacting our technical team through the contact form."},
	{"do you provide customer support", "Yes, our support team is available to help you with technical and product-related queries."},
	{"do you offer live chat support", "Currently, we provide chatbot and email-based support, with live chat planned for future updates."},

	// Pricing and demos
	{"what is your pricing", "Our pricing depends on the type of AI service, project scale, and customization requirements."},
	{"how much do your services cost", "Costs vary depending on project complexity and the AI model involved. Please contact us for an estimate."},
	{"do you have free trials", "We provide demo access for selected solutions upon request."},
	{"can i book a demo", "Yes, you can schedule a live demonstration by contacting our team."},
	{"how can i schedule a demo", "Please provide your contact information and preferred time to arrange a demo session."},
	{"what are your payment options", "Payments can be made via bank transfer or online payment once the project proposal is confirmed."},
	{"do you provide subscription plans", "Yes, we offer both one-time and subscription-based service models depending on client needs."},

	// Team and careers
	{"who are in your team", "Our team consists of AI engineers, software developers, researchers, and data analysts with diverse expertise."},
	{"do you have job openings", "Yes, we periodically open positions in AI, data science, and web development. Please check our careers section."},
	{"how can i apply for a job", "You can apply by sending your CV and cover letter through the contact form or the careers email listed on our site."},
	{"who leads the company", "AI-Solution is led by experienced developers and researchers with expertise in artificial intelligence and software design."},

	// Technology
	{"what technologies do you use", "We use Python, Django, TensorFlow, Keras, Bootstrap, and PostgreSQL to develop our systems."},
	{"what programming languages do you use", "Our primary languages are Python and JavaScript, supported by SQL for database management."},
	{"what is your tech stack", "Our stack includes Django for backend, Bootstrap for frontend, and MySQL or PostgreSQL for database operations."},
	{"what ai techniques do you use", "We use supervised and unsupervised learning, neural networks, and NLP for various AI applications."},
	{"do you use machine learning", "Yes, machine learning forms the foundation of most of our predictive and analytical solutions."},
	{"do you use deep learning", "Yes, we apply deep learning for image recognition, diagnostics, and advanced data modeling."},
	{"do you work with cloud technologies", "Yes, we deploy AI systems on AWS, PythonAnywhere, and Netlify for scalability and reliability."},
	{"do you support mobile platforms", "Yes, we can integrate AI APIs with mobile applications and dashboards."},

	// Deployment and testing
	{"how do you deploy your applications", "We deploy our applications on cloud platforms like PythonAnywhere, AWS, and Netlify for secure hosting."},
	{"what is your testing process", "We perform unit testing, integration testing, and user acceptance testing to ensure software reliability."},
	{"do you perform quality assurance", "Yes, all our systems undergo strict quality assurance and performance optimization."},
	{"do you provide maintenance", "Yes, we offer post-deployment support, monitoring, and maintenance services."},

	// Data and privacy
	{"how do you handle data privacy", "We comply with data privacy standards and ensure that user data is encrypted and securely managed."},
	{"do you store user data", "We store only the minimum required data necessary for application functionality, following privacy regulations."},
	{"is my information secure", "Yes, we implement authentication, encryption, and access control to protect all user data."},
	{"do you follow gdpr", "Yes, our data management practices are aligned with GDPR and related privacy standards."},

	// Policies
	{"do you offer refunds", "Refunds are processed according to project agreements and service-level terms."},
	{"do you provide documentation", "Yes, every project includes full documentation for setup, usage, and maintenance."},
	{"do you sign nda", "Yes, we sign non-disclosure agreements to ensure confidentiality of client projects."},
	{"do you offer long-term support", "Yes, we provide ongoing maintenance, monitoring, and feature updates based on client requirements."},

	// Small talk
	{"thank you", "You're welcome. Is there anything else you would like to know?"},
	{"thanks", "You're welcome. Feel free to ask anything else."},
	{"goodbye", "Goodbye. Thank you for visiting AI-Solution."},
	{"bye", "Thank you for your time. Have a great day ahead."},
	{"who are you", "I am the AI-Solution virtual assistant designed to answer your queries about our company and services."},
	{"what can you do", "I can answer questions about AI-Solution, its services, projects, pricing, and technologies."},
	{"are you a real person", "No, I am an AI chatbot built by the AI-Solution development team to assist visitors automatically."},
}
