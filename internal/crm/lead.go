package crm

import (
	"fmt"

	"github.com/adroitdesign/studio-api/internal/model"
)

// Lead source id configured on the CRM side for website submissions.
const websiteSourceID = 1

// Tag ids configured on the CRM side: project inquiries get their own tag,
// everything else lands under the generic website tag.
const (
	tagWebsite = 1
	tagProject = 2
)

// LeadFields are the columns fetched when browsing leads from the CRM.
var LeadFields = []string{
	"name", "email_from", "phone", "description", "partner_name", "stage_id", "create_date",
}

// LeadValues maps an inquiry one-way into the CRM lead shape. Nothing flows
// back besides the assigned id.
func LeadValues(i model.Inquiry) map[string]any {
	name := fmt.Sprintf("Inquiry from %s", i.Name)
	if i.Subject != nil && *i.Subject != "" {
		name = *i.Subject
	}

	partner := i.Name
	if i.Company != nil && *i.Company != "" {
		partner = *i.Company
	}

	tag := tagWebsite
	if i.Type == "project" {
		tag = tagProject
	}

	values := map[string]any{
		"name":         name,
		"email_from":   i.Email,
		"phone":        false,
		"description":  i.Message,
		"partner_name": partner,
		"contact_name": i.Name,
		"type":         "lead",
		"source_id":    websiteSourceID,
		"tag_ids":      []any{[]any{6, 0, []int{tag}}},
	}
	if i.Phone != nil && *i.Phone != "" {
		values["phone"] = *i.Phone
	}
	return values
}
