// Package schemas validates server payload shapes at the API client boundary.
// The backend is loosely typed; anything that does not match the expected
// record shape fails loudly here instead of decoding into garbage.
package schemas

// jobOffersSchema describes the collection returned by the job-offer list
// endpoints. Extra server-side fields are tolerated; missing or mistyped
// core fields are not.
const jobOffersSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title"],
    "properties": {
      "id": {"type": "integer"},
      "title": {"type": "string"},
      "description": {"type": "string"},
      "salary": {"type": "number"},
      "location": {"type": "string"},
      "employmentType": {"enum": ["FULL_TIME", "PART_TIME", "FREELANCE"]},
      "companyId": {"type": "integer"},
      "companyName": {"type": ["string", "null"]}
    }
  }
}`

// jobApplicationsSchema covers both the candidate view and the enriched
// recruiter/admin view of the application collection.
const jobApplicationsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "jobOfferId", "status"],
    "properties": {
      "id": {"type": "integer"},
      "jobOfferId": {"type": "integer"},
      "status": {"enum": ["PENDING", "UNDER_REVIEW", "INTERVIEW", "ACCEPTED", "REJECTED", "WITHDRAWN"]},
      "coverLetter": {"type": ["string", "null"]},
      "appliedAt": {"type": "string"},
      "jobOfferTitle": {"type": ["string", "null"]},
      "companyId": {"type": "integer"},
      "companyName": {"type": ["string", "null"]},
      "candidateEmail": {"type": ["string", "null"]},
      "candidateSkills": {"type": ["array", "null"], "items": {"type": "string"}}
    }
  }
}`

// companiesSchema describes GET /users/companies.
const companiesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name"],
    "properties": {
      "id": {"type": "integer"},
      "name": {"type": "string"}
    }
  }
}`
