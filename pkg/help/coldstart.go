package help

const ColdstartYAML = `# doc-verifier Quick Start

file_types:
  pdf: "Structure metadata, page text, encryption flag"
  docx: "Core properties, paragraph text"
  text: "Used as-is after UTF-8 cleanup"

output_formats:
  json: "Indented JSON to stdout (default)"
  yaml: "YAML to stdout"

commands:
  verify_document: |
    doc-verifier verify contract.pdf

  verify_with_config: |
    doc-verifier verify --config config.yaml --output-format yaml report.docx

  check_trusted_sources: |
    doc-verifier check-sources statement.txt

  fetch_references: |
    doc-verifier fetch --urls "https://www.irs.gov,https://www.sec.gov"
    doc-verifier fetch --trusted

  list_verdicts: |
    doc-verifier db verdicts

  verdict_details: |
    doc-verifier db verdict <document-id>

  typical_flow: |
    # Step 1: Verify the document
    doc-verifier verify filing.pdf

    # Step 2: List stored verdicts
    doc-verifier db verdicts

    # Step 3: Inspect one verdict
    doc-verifier db verdict <document-id>

config_keys:
  trusted_sources: "Reference URLs phrases are matched against"
  fetch.workers: "Concurrent reference fetches (default 4)"
  match.similarity_threshold: "Phrase match cutoff (default 0.6)"
  moderation.endpoint: "Optional content moderation service URL"
  storage.backend: "fs (default) or minio"
`
