// Package vcfio reads VCF line streams with transparent gzip/BGZF detection
// and writes batch files with optional parallel block compression.
package vcfio
