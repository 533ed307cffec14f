package prompt

import "google.golang.org/genai"

func str(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func num(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber, Description: description}
}

func strList(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Items:       &genai.Schema{Type: genai.TypeString},
		Description: description,
	}
}

// BidAnalysisSchema describes model.BidAnalysis.
func BidAnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"projectName":        str("The official name or title of the project."),
					"issuingEntity":      str("The organization or entity that issued the bid."),
					"submissionDeadline": str("The final date and time for bid submission (e.g., '2024-10-26 10:00 AM')."),
					"bidType":            str("The type of solicitation (e.g., RFP, RFQ, Tender)."),
					"projectManager":     str("The designated project manager, if mentioned."),
					"estimatedBudget":    str("The estimated budget or value of the project, if available."),
				},
			},
			"relevance": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"isRelevant":            {Type: genai.TypeBoolean, Description: "A boolean indicating if the bid is relevant to Satewave's core business."},
					"relevanceScore":        num("A score from 0 to 100 indicating the degree of fit."),
					"reasoning":             str("A concise explanation for the relevance determination."),
					"relevantKeywordsFound": strList("A list of relevant keywords found in the document."),
					"strategicAlignment":    str("Analysis of the bid's alignment with Satewave's long-term strategic goals."),
					"scoreBreakdown": {
						Type:        genai.TypeObject,
						Description: "A breakdown of how the relevance score was calculated.",
						Properties: map[string]*genai.Schema{
							"keywordMatch":   num("Score based on relevant keywords found (out of 40)."),
							"domainFit":      num("Score based on how well the project fits Satewave's core business domains (out of 30)."),
							"clientMatch":    num("Score based on whether the issuing entity is a past or target client (out of 20)."),
							"strategicValue": num("Score based on the project's strategic importance (out of 10)."),
						},
					},
				},
			},
			"clientCapabilitiesFit": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"primaryDomain":        str("The primary business domain this bid falls into (e.g., Solar, ICT, Telecomms, Civil Construction, Healthcare, Other)."),
					"offeringMatchDetails": str("Details on how the required deliverables match Satewave's known offerings and past projects."),
				},
			},
			"lineItems": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":           str("The name of the product, service, or deliverable."),
						"description":    str("A brief description of the line item."),
						"quantity":       str("The quantity required. Can be a number or text like 'As needed'."),
						"specifications": str("Key technical specifications or requirements for the item."),
					},
				},
			},
			"requiredDocuments": strList("A list of all mandatory documents required for bid submission."),
			"flagsForHumanReview": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"priority":    str("Priority of the flag (High, Medium, Low)."),
						"description": str("A detailed description of the issue requiring human attention (e.g., conflicting deadlines, ambiguous requirements)."),
					},
				},
			},
		},
	}
}

// TenderListSchema describes []model.MonitoredTender.
func TenderListSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":            str("The title of the tender."),
				"issuingEntity":    str("The organization that published the tender."),
				"source":           str("The simulated source of the tender (e.g., 'PRAZ e-GP Portal')."),
				"summary":          str("A brief summary of the tender's scope."),
				"keywords":         strList("List of keywords that match the search criteria."),
				"hypotheticalLink": str("A realistic-looking but non-functional URL for the tender."),
			},
		},
	}
}

// ChecklistSchema describes model.Checklist.
func ChecklistSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"category": str("The category of the checklist items (e.g., 'Corporate & Legal', 'Financial Compliance')."),
				"items":    strList("A list of specific documents or actions required for this category."),
				"notes":    str("Brief, helpful notes or context for the category, referencing regulations where applicable."),
			},
		},
	}
}
