package ruralurban

/*

Package ruralurban derives productive-activity indicators (paid work,
volunteering, caregiving) for older survey respondents and compares
their prevalence between the rural and urban strata of each census
region or division.

Raw questionnaire items carry survey-style missing codes ("don't
know", "refused", skip patterns), so every derived indicator is
three-valued: yes, no, or unknown.  Unknown values propagate through
all derivation rules explicitly and are never collapsed into "no".
Two combination rules apply at different levels: an OR over sub-items
that requires at least one known input before concluding "no", and an
evidence rule over whole activities that reports unknown whenever two
or more of its three inputs are unknown.

Spousal caregiving is reported by the person receiving the care, so a
linkage stage attributes the caregiver flag to the spouse's own record
through the reporter's cross-reference identifier.

Input fragments are read from Stata dta, SAS7BDAT, or CSV survey
extracts using the datareader package, joined on the respondent
identifier, filtered to the community-dwelling 65+ cohort, and
aggregated into per-stratum contingency tables.  A two-sample
proportion test with continuity correction compares the rural and
urban proportions within each geography value.

*/
