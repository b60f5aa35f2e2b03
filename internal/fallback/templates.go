package fallback

import (
	"math/rand"
	"strings"
)

// paragraphTemplates holds the per-slot template pools for one category.
// Every template contains a {topic} placeholder.
type paragraphTemplates struct {
	intros      []string
	bodies      []string
	conclusions []string
}

// generalCategory is the bucket used for any unrecognized category;
// the lookup must never fail to resolve.
const generalCategory = "general"

// templateTable maps post categories to their template pools.
// Immutable after load.
var templateTable = map[string]paragraphTemplates{
	"technology": {
		intros: []string{
			"In today's rapidly evolving digital landscape, {topic} has become a subject no developer or decision-maker can afford to ignore.",
			"Few areas of modern technology are moving as quickly as {topic}, and keeping up can feel like a full-time job.",
			"When people talk about the future of software, the conversation almost always turns to {topic}.",
		},
		bodies: []string{
			"At its core, {topic} is about solving real problems for real users. The tooling matters less than understanding the fundamentals, and teams that invest in those fundamentals consistently ship more reliable systems.",
			"Adopting {topic} successfully usually starts small: a pilot project, a clear success metric, and a willingness to iterate. Organizations that skip these steps often end up with impressive demos and disappointing production results.",
			"The ecosystem around {topic} has matured considerably. Open-source libraries, managed services, and active communities mean that the barrier to entry has never been lower for teams willing to learn.",
		},
		conclusions: []string{
			"Whether you are just getting started with {topic} or refining an existing practice, the key is steady, deliberate progress over chasing every new trend.",
			"The landscape of {topic} will keep shifting, but the principles discussed here should serve as a durable foundation.",
		},
	},
	"education": {
		intros: []string{
			"Learning about {topic} can transform not just what you know, but how you approach problems in every area of life.",
			"Educators and students alike are discovering that {topic} rewards curiosity and consistent practice more than raw talent.",
			"Few subjects illustrate the power of structured learning better than {topic}.",
		},
		bodies: []string{
			"Effective study of {topic} combines theory with hands-on practice. Reading builds the vocabulary, but applying ideas in small projects is what builds genuine understanding.",
			"One underrated strategy for mastering {topic} is teaching it to someone else. Explaining a concept out loud quickly exposes the gaps in your own understanding.",
			"Progress in {topic} is rarely linear. Plateaus are normal, and the learners who push through them are the ones who ultimately develop lasting expertise.",
		},
		conclusions: []string{
			"However you choose to study {topic}, remember that consistency beats intensity: a little progress every day compounds remarkably fast.",
			"The journey through {topic} is as valuable as the destination, and every step builds skills that transfer far beyond the subject itself.",
		},
	},
	"lifestyle": {
		intros: []string{
			"Integrating {topic} into daily life doesn't require a dramatic overhaul, just a series of small, sustainable choices.",
			"More and more people are finding that {topic} is less a trend and more a genuine shift in how we live well.",
			"If you've been curious about {topic}, you're in good company.",
		},
		bodies: []string{
			"The most common mistake with {topic} is trying to change everything at once. Start with one habit, give it a few weeks to settle, and build from there.",
			"What works for one person with {topic} may not work for another. Pay attention to your own results rather than comparing yourself to curated highlights online.",
			"Experts agree that the benefits of {topic} come from consistency rather than perfection. Missing a day is not failure; quitting after missing a day is.",
		},
		conclusions: []string{
			"In the end, {topic} is about building a life that feels good from the inside, not one that merely looks good from the outside.",
			"Small steps toward {topic} today become the routines you won't even have to think about tomorrow.",
		},
	},
	"science": {
		intros: []string{
			"Recent developments in {topic} are reshaping what researchers thought possible only a decade ago.",
			"The study of {topic} sits at a fascinating intersection of theory, experiment, and sheer human curiosity.",
			"To appreciate why {topic} matters, it helps to start with the questions scientists are actually trying to answer.",
		},
		bodies: []string{
			"Research into {topic} proceeds through careful observation, hypothesis, and replication. Single dramatic findings make headlines, but the accumulated weight of evidence is what moves the field.",
			"One of the most exciting aspects of {topic} is how it connects to neighboring disciplines, with techniques from one field routinely unlocking progress in another.",
			"Public understanding of {topic} often lags the research frontier by years. Clear, honest communication of both findings and uncertainty is part of the scientific enterprise.",
		},
		conclusions: []string{
			"As research into {topic} continues, today's open questions will become tomorrow's textbook chapters.",
			"The story of {topic} is far from finished, and that is precisely what makes it worth following.",
		},
	},
	"business": {
		intros: []string{
			"In a competitive market, understanding {topic} can be the difference between leading an industry and chasing it.",
			"Every successful organization eventually has to grapple with {topic}, whether by deliberate strategy or by force of circumstance.",
			"Leaders who take {topic} seriously consistently outperform those who treat it as an afterthought.",
		},
		bodies: []string{
			"The economics of {topic} reward early clarity: teams that define what success looks like before investing avoid the most expensive category of mistake.",
			"Execution matters more than strategy in {topic}. A mediocre plan carried out with discipline routinely beats a brilliant plan that never leaves the slide deck.",
			"Customer feedback is the most underused asset in {topic}. The organizations that listen systematically find opportunities their competitors never see.",
		},
		conclusions: []string{
			"Approached with discipline and patience, {topic} becomes less a risk to manage and more an engine of durable growth.",
			"The fundamentals of {topic} outlast any quarter's trends: create real value, measure honestly, and adapt quickly.",
		},
	},
	generalCategory: {
		intros: []string{
			"There's a lot to unpack when it comes to {topic}, and this post aims to cover the essentials.",
			"{topic} is one of those subjects that rewards a closer look.",
			"Whether you're new to {topic} or revisiting it with fresh eyes, a structured overview helps.",
		},
		bodies: []string{
			"The first thing to understand about {topic} is the context around it: why it matters, who it affects, and what problems it actually solves.",
			"Opinions on {topic} vary widely, but most disagreements trace back to different starting assumptions. Making those assumptions explicit moves the conversation forward.",
			"Practical experience with {topic} tends to be the best teacher. Start small, take notes, and revise your approach as you learn what works.",
		},
		conclusions: []string{
			"There is always more to say about {topic}, but the ideas above offer a solid starting point.",
			"Hopefully this overview of {topic} has given you something useful to take away and build on.",
		},
	},
}

// topicIdeaTable holds the fixed per-category topic suggestions.
var topicIdeaTable = map[string][]string{
	"technology": {
		"How open-source tools are changing small team development",
		"A practical introduction to building your first API",
		"What developers should know about software security basics",
		"The real costs and benefits of moving to the cloud",
		"Five habits of highly effective code reviewers",
	},
	"education": {
		"Study techniques backed by learning science",
		"How to build a self-directed learning curriculum",
		"The case for learning in public",
		"Why teaching others is the fastest way to learn",
		"Making the most of free online course platforms",
	},
	"lifestyle": {
		"Building a morning routine that actually sticks",
		"Digital minimalism: a one-week experiment",
		"Budget-friendly ways to eat better this month",
		"How small habits compound into big changes",
		"Finding balance between work and personal projects",
	},
	"science": {
		"Recent breakthroughs everyone should know about",
		"How the scientific method applies to everyday decisions",
		"The surprising science of sleep and memory",
		"Climate data explained for non-scientists",
		"What replication studies teach us about trusting research",
	},
	"business": {
		"Lessons from launching a product with no budget",
		"How to validate a business idea in one weekend",
		"The metrics that actually matter for early-stage teams",
		"Building customer trust through transparent communication",
		"Remote team management: what works and what doesn't",
	},
	generalCategory: {
		"A beginner's guide to getting started",
		"Common mistakes and how to avoid them",
		"Lessons learned from a year of practice",
		"The tools and resources worth your time",
		"Answering the questions readers ask most",
	},
}

// templatesFor resolves the template pool for a category, falling back to the
// general bucket for anything unrecognized.
func templatesFor(category string) paragraphTemplates {
	key := strings.ToLower(strings.TrimSpace(category))
	if tpl, ok := templateTable[key]; ok {
		return tpl
	}
	return templateTable[generalCategory]
}

// topicIdeasFor resolves the idea list for a category, falling back to the
// general bucket.
func topicIdeasFor(category string) []string {
	key := strings.ToLower(strings.TrimSpace(category))
	if ideas, ok := topicIdeaTable[key]; ok {
		return ideas
	}
	return topicIdeaTable[generalCategory]
}

// pick selects one template at random. Randomness here affects cosmetic
// variety only, never classification or control flow.
func pick(options []string) string {
	return options[rand.Intn(len(options))]
}

// fill substitutes the {topic} placeholder.
func fill(template, topic string) string {
	return strings.ReplaceAll(template, "{topic}", topic)
}
