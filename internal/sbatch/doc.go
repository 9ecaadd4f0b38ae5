// Package sbatch integrates with the SLURM batch scheduler: parsing the
// #SBATCH directives slurmtail needs out of a batch script, expanding
// the scheduler's filename placeholders, and submitting scripts through
// the external sbatch command.
package sbatch
