package taxonomy

// checkNames maps linter check identifiers to human-readable names.
// The table is hand-curated for the cost-check ruleset and constant for
// the lifetime of a run.
var checkNames = map[string]string{
	"CKV_AWS_801": "DynamoDB On-Demand Billing",
	"CKV_AWS_802": "DynamoDB Overprovisioned r/w Capacity",
	"CKV_AWS_803": "DynamoDB GSIs",
	"CKV_AWS_804": "Deprecated Instance/Volume Types",
	"CKV2_AWS_61": "S3 Lifecycle Configurations",
	"CKV_AWS_805": "S3 Lifecycle Configurations",
	"CKV_AWS_806": "DynamoDB On-Demand Billing",
	"CKV_AWS_807": "Deprecated Instance/Volume Types",
}

var checkDescriptions = map[string]string{
	"CKV_AWS_801": "Detects DynamoDB tables that do not use PAY_PER_REQUEST (on-demand) billing. This can lead to over-provisioning, unnecessary costs, or throttling if usage exceeds limits.",
	"CKV_AWS_802": "Detects DynamoDB tables that use provisioned capacity (read_capacity/write_capacity > 1). Provisioned settings can cause higher costs if not properly tuned.",
	"CKV_AWS_803": "Flags DynamoDB tables that define Global Secondary Indexes (GSIs). GSIs add unnecessary costs and complexity if not carefully optimized.",
	"CKV_AWS_804": "Detects use of outdated EC2 instance or EBS volume types (e.g., t2, m4, gp2). Older generations might be less efficient, slower, and more expensive.",
	"CKV2_AWS_61": "Verifies that aws_s3_bucket resources have lifecycle configurations defined via lifecycle_rules or as a linked aws_s3_bucket_lifecycle_configuration. Missing rules may lead to data retention in expensive storage indefinitely, thus increasing costs.",
	"CKV_AWS_805": "Verifies that S3 buckets have lifecycle configurations with at least one rule defined. Missing rules may lead to data retention in expensive storage indefinitely, thus increasing costs.",
	"CKV_AWS_806": "Detects DynamoDB tables that do not use PAY_PER_REQUEST (on-demand) billing. This can lead to over-provisioning, unnecessary costs, or throttling if usage exceeds limits.",
	"CKV_AWS_807": "Detects use of outdated types (e.g., t2, m3, m4, c4) for EC2, RDS and SageMaker instances. Older generations might be less efficient, slower, and more expensive.",
}

var checkRecommendations = map[string][]string{
	"CKV_AWS_801": {
		"Set billing_mode=PAY_PER_REQUEST in your DynamoDB table configuration.",
		"Avoid setting read_capacity and write_capacity.",
	},
	"CKV_AWS_802": {
		"Remove read_capacity and write_capacity.",
		"Set billing_mode=PAY_PER_REQUEST in your DynamoDB table configuration.",
	},
	"CKV_AWS_803": {
		"Avoid using GSIs unless absolutely necessary for query performance.",
	},
	"CKV_AWS_804": {
		"Use newer instance types (e.g., t3, m5).",
		"Use newer volume types (e.g., gp3, io2).",
		"Review AWS documentation for the latest instance and volume types.",
	},
	"CKV2_AWS_61": {
		"Add a lifecycle_rule block inside the S3 bucket for a compact definition of simple rules.",
		"Link the S3 bucket to a separate aws_s3_bucket_lifecycle_configuration resource for complex or interdependent rules.",
	},
	"CKV_AWS_805": {
		"Define LifecycleConfiguration in the Properties section of the bucket.",
		"Include a non-empty Rules list with expiration/transition logic.",
	},
	"CKV_AWS_806": {
		"Set BillingMode:PAY_PER_REQUEST in your DynamoDB table configuration.",
		"Avoid setting the read/write capacity.",
	},
	"CKV_AWS_807": {
		"Use newer types (e.g., t3, m5).",
		"Review AWS documentation for the latest instance and volume types.",
	},
}

// billingChecks are the identifiers that flag non-pay-per-request
// DynamoDB billing. Findings with these checks are preferred when a
// single example finding is selected for a repository.
var billingChecks = map[string]bool{
	"CKV_AWS_801": true,
	"CKV_AWS_806": true,
}
