// Package probe locates the MPI installation the bridge is compiled against.
//
// Probing tries, in order, the strategies a build host typically offers and
// returns the first that succeeds:
//
//  1. $MPI_PKG_CONFIG names a pkg-config package or .pc file. If it is set
//     but unusable, probing stops with an error instead of falling through.
//  2. $CRAY_MPICH_DIR points at a Cray MPICH tree with lib/pkgconfig/mpich.pc.
//  3. The compiler wrapper ($MPICC, default mpicc) is asked for its real
//     command line with -show; -I, -L and -l arguments are collected.
//  4. pkg-config mpich.
//  5. pkg-config ompi.
//
// On Windows the Intel MPI ($I_MPI_ROOT) and MS-MPI ($MSMPI_INC,
// $MSMPI_LIB32/$MSMPI_LIB64) environments are consulted instead.
//
// When nothing is found the returned error lists the reason every strategy
// failed. Probing never guesses paths; a host without MPI fails the build.
package probe
